package vocab

import (
	"strings"
	"time"
)

// WordInput is the payload for creating one word. Distractors must contain
// exactly DistractorCount entries.
type WordInput struct {
	English           string
	Japanese          string
	Distractors       []string
	ExampleSentence   string
	ExampleSentenceJa string
}

// Validate checks a single input before it reaches a backend.
func (in WordInput) Validate() error {
	if strings.TrimSpace(in.English) == "" {
		return ValidationError("english is required")
	}
	if strings.TrimSpace(in.Japanese) == "" {
		return ValidationError("japanese is required")
	}
	if len(in.Distractors) != DistractorCount {
		return ValidationError("got %d distractors, want exactly %d", len(in.Distractors), DistractorCount)
	}
	for i, d := range in.Distractors {
		if strings.TrimSpace(d) == "" {
			return ValidationError("distractor %d is empty", i+1)
		}
	}
	return nil
}

// ValidateWordInputs checks a batch before any row is written.
func ValidateWordInputs(inputs []WordInput) error {
	if len(inputs) == 0 {
		return ValidationError("no words to create")
	}
	for i, in := range inputs {
		if err := in.Validate(); err != nil {
			return ValidationError("word %d (%s): %v", i+1, in.English, err)
		}
	}
	return nil
}

// ProjectUpdate is a partial update: only non-nil fields are written.
type ProjectUpdate struct {
	Title    *string
	IsSynced *bool
	ShareID  *string
}

// Empty reports whether the update carries no fields.
func (u ProjectUpdate) Empty() bool {
	return u.Title == nil && u.IsSynced == nil && u.ShareID == nil
}

// WordUpdate is a partial update: only non-nil fields are written.
type WordUpdate struct {
	English           *string
	Japanese          *string
	Distractors       *StringList
	ExampleSentence   *string
	ExampleSentenceJa *string
	Status            *Status
	EaseFactor        *float64
	IntervalDays      *int
	RepetitionCount   *int
	IsFavorite        *bool
	LastReviewedAt    *time.Time
	NextReviewAt      *time.Time
}

// Empty reports whether the update carries no fields.
func (u WordUpdate) Empty() bool {
	return u.English == nil &&
		u.Japanese == nil &&
		u.Distractors == nil &&
		u.ExampleSentence == nil &&
		u.ExampleSentenceJa == nil &&
		u.Status == nil &&
		u.EaseFactor == nil &&
		u.IntervalDays == nil &&
		u.RepetitionCount == nil &&
		u.IsFavorite == nil &&
		u.LastReviewedAt == nil &&
		u.NextReviewAt == nil
}

// Validate rejects malformed update payloads before any write.
func (u WordUpdate) Validate() error {
	if u.English != nil && strings.TrimSpace(*u.English) == "" {
		return ValidationError("english must not be blank")
	}
	if u.Japanese != nil && strings.TrimSpace(*u.Japanese) == "" {
		return ValidationError("japanese must not be blank")
	}
	if u.Distractors != nil && len(*u.Distractors) != DistractorCount {
		return ValidationError("got %d distractors, want exactly %d", len(*u.Distractors), DistractorCount)
	}
	if u.Status != nil && !u.Status.Valid() {
		return ValidationError("unknown status %q", *u.Status)
	}
	return nil
}
