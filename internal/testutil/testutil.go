// Package testutil provides shared test helpers for config files and
// vocabulary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scanvocab/scanvocab/internal/vocab"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and the data directories it
// points at. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "data", "sessions"), 0755))

	configContent := fmt.Sprintf(`account:
  user_id: test-user
storage:
  sqlite_path: %s
session:
  directory: %s
  freshness_window: 24h
  refresh_interval: 30s
review:
  ledger_path: %s
`,
		filepath.Join(tmpDir, "data", "scanvocab.db"),
		filepath.Join(tmpDir, "data", "sessions"),
		filepath.Join(tmpDir, "data", "wrong_answers.yml"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake extraction API
// key for tests that need the scan flow configured.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("extraction:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// WordOption configures optional fields when creating a word fixture.
type WordOption func(*vocab.Word)

// WithStatus sets the mastery status.
func WithStatus(status vocab.Status) WordOption {
	return func(word *vocab.Word) {
		word.Status = status
	}
}

// WithFavorite marks the word as a favorite.
func WithFavorite() WordOption {
	return func(word *vocab.Word) {
		word.IsFavorite = true
	}
}

// WithExample sets the example sentence and its translation.
func WithExample(sentence, translation string) WordOption {
	return func(word *vocab.Word) {
		word.ExampleSentence = sentence
		word.ExampleSentenceJa = translation
	}
}

// WithSchedule sets the spaced-repetition fields.
func WithSchedule(ease float64, intervalDays, repetitions int, nextReviewAt time.Time) WordOption {
	return func(word *vocab.Word) {
		word.EaseFactor = ease
		word.IntervalDays = intervalDays
		word.RepetitionCount = repetitions
		word.NextReviewAt = &nextReviewAt
	}
}

// NewWord creates a word fixture with deterministic content derived from its
// position in the deck.
func NewWord(projectID string, position int, opts ...WordOption) vocab.Word {
	n := position + 1
	word := vocab.Word{
		ID:        fmt.Sprintf("word-%d", n),
		ProjectID: projectID,
		English:   fmt.Sprintf("term%d", n),
		Japanese:  fmt.Sprintf("訳語%d", n),
		Distractors: vocab.StringList{
			fmt.Sprintf("誤答%da", n),
			fmt.Sprintf("誤答%db", n),
			fmt.Sprintf("誤答%dc", n),
		},
		Status:     vocab.StatusNew,
		EaseFactor: vocab.DefaultEaseFactor,
		Position:   position,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&word)
	}
	return word
}

// NewProject creates a project fixture.
func NewProject(id, title string) vocab.Project {
	return vocab.Project{
		ID:        id,
		OwnerID:   "test-user",
		Title:     title,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
