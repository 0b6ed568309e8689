package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

// UpdateResult reports one answer's status write. The write error is
// carried in the value instead of returned so an interactive session can
// show the failure and keep going.
type UpdateResult struct {
	WordID string
	From   vocab.Status
	To     vocab.Status
	Err    error
}

// Changed reports whether the answer moved the word to a different status.
func (r UpdateResult) Changed() bool {
	return r.From != r.To
}

// StatusUpdater applies one answer to a word: status transition, schedule
// update, and a single immediate repository write per answer.
type StatusUpdater struct {
	repo   vocab.Repository
	ledger *Ledger
	now    func() time.Time
}

// NewStatusUpdater returns an updater writing through repo. A nil ledger
// disables wrong-answer recording.
func NewStatusUpdater(repo vocab.Repository, ledger *Ledger) *StatusUpdater {
	return &StatusUpdater{
		repo:   repo,
		ledger: ledger,
		now:    time.Now,
	}
}

// Apply records one answer. The repository write happens immediately, even
// when the status itself does not change, because the schedule fields move
// on every answer. A wrong answer is also recorded into the ledger; ledger
// failures are logged and never interrupt the session.
func (u *StatusUpdater) Apply(ctx context.Context, word vocab.Word, correct bool) UpdateResult {
	now := u.now()
	next := Advance(word.Status, correct)
	schedule := NextSchedule(word, correct, now)

	result := UpdateResult{
		WordID: word.ID,
		From:   word.Status,
		To:     next,
	}
	result.Err = u.repo.UpdateWord(ctx, word.ID, vocab.WordUpdate{
		Status:          lo.ToPtr(next),
		EaseFactor:      lo.ToPtr(schedule.EaseFactor),
		IntervalDays:    lo.ToPtr(schedule.IntervalDays),
		RepetitionCount: lo.ToPtr(schedule.RepetitionCount),
		LastReviewedAt:  lo.ToPtr(now),
		NextReviewAt:    lo.ToPtr(schedule.NextReviewAt),
	})

	if !correct && u.ledger != nil {
		if err := u.ledger.Record(word); err != nil {
			slog.Warn("recording wrong answer failed", "word_id", word.ID, "err", err)
		}
	}
	return result
}
