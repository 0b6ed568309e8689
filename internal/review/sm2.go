package review

import (
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

// MinEaseFactor is the floor the ease factor never drops below.
const MinEaseFactor = 1.3

// The interactive flow only distinguishes correct from wrong, so the two
// answers map to fixed SM-2 quality grades.
const (
	qualityCorrect = 5
	qualityWrong   = 2
)

// Schedule is the spaced-repetition state a word carries after one answer.
type Schedule struct {
	EaseFactor      float64
	IntervalDays    int
	RepetitionCount int
	NextReviewAt    time.Time
}

// NextSchedule computes a word's schedule after answering it at now.
// A correct answer grows the interval (1 day, then 6, then the previous
// interval scaled by the updated ease factor); a wrong answer resets the
// repetition streak and schedules the word for tomorrow.
func NextSchedule(word vocab.Word, correct bool, now time.Time) Schedule {
	ease := word.EaseFactor
	if ease == 0 {
		// Rows created before scheduling existed carry a zero ease.
		ease = vocab.DefaultEaseFactor
	}

	quality := qualityWrong
	if correct {
		quality = qualityCorrect
	}
	ease = nextEaseFactor(ease, quality)

	next := Schedule{EaseFactor: ease}
	if !correct {
		next.IntervalDays = 1
		next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
		return next
	}

	next.RepetitionCount = word.RepetitionCount + 1
	switch next.RepetitionCount {
	case 1:
		next.IntervalDays = 1
	case 2:
		next.IntervalDays = 6
	default:
		next.IntervalDays = int(math.Round(float64(word.IntervalDays) * ease))
	}
	if next.IntervalDays < 1 {
		next.IntervalDays = 1
	}
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	return next
}

// nextEaseFactor applies the standard SM-2 ease delta for a 0..5 grade:
// +0.10 for a perfect answer, -0.32 for grade two.
func nextEaseFactor(ease float64, quality int) float64 {
	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Max(ease, MinEaseFactor)
}

// DueWords returns the words whose next review is at or before now. Words
// that were never scheduled are always due.
func DueWords(words []vocab.Word, now time.Time) []vocab.Word {
	return lo.Filter(words, func(word vocab.Word, _ int) bool {
		return word.NextReviewAt == nil || !word.NextReviewAt.After(now)
	})
}
