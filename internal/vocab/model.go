// Package vocab defines the vocabulary data model and the storage contract
// shared by the local and remote backends.
package vocab

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DistractorCount is the number of wrong options stored with every word.
const DistractorCount = 3

// DefaultEaseFactor is the scheduling ease assigned to newly created words.
const DefaultEaseFactor = 2.5

// Project is a named deck of vocabulary words belonging to one user.
type Project struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Title     string    `db:"title"`
	IsSynced  bool      `db:"is_synced"`
	ShareID   *string   `db:"share_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Word is one vocabulary entry. Status changes only through the review
// package; the favorite flag is independent of status and only cleared by
// explicit user action.
type Word struct {
	ID                string     `db:"id"`
	ProjectID         string     `db:"project_id"`
	English           string     `db:"english"`
	Japanese          string     `db:"japanese"`
	Distractors       StringList `db:"distractors"`
	ExampleSentence   string     `db:"example_sentence"`
	ExampleSentenceJa string     `db:"example_sentence_ja"`
	Status            Status     `db:"status"`
	EaseFactor        float64    `db:"ease_factor"`
	IntervalDays      int        `db:"interval_days"`
	RepetitionCount   int        `db:"repetition_count"`
	IsFavorite        bool       `db:"is_favorite"`
	LastReviewedAt    *time.Time `db:"last_reviewed_at"`
	NextReviewAt      *time.Time `db:"next_review_at"`
	Position          int        `db:"position"`
	CreatedAt         time.Time  `db:"created_at"`
}

// StringList stores a []string as a single JSON-encoded TEXT column so the
// sqlite and postgres backends scan it identically.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	encoded, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%v) > %w", l, err)
	}
	return string(encoded), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported distractors column type %T", src)
	}
}
