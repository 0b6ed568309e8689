package review

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

func TestLedger_Record(t *testing.T) {
	word := vocab.Word{
		ID:          "word-1",
		ProjectID:   "project-1",
		English:     "gate",
		Japanese:    "搭乗口",
		Distractors: vocab.StringList{"改札", "出口", "入口"},
	}

	t.Run("first wrong answer inserts with a count of one", func(t *testing.T) {
		ledger := NewLedger(filepath.Join(t.TempDir(), "wrong_answers.yml"))

		require.NoError(t, ledger.Record(word))

		entries, err := ledger.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "word-1", entries[0].WordID)
		assert.Equal(t, "project-1", entries[0].ProjectID)
		assert.Equal(t, "gate", entries[0].English)
		assert.Equal(t, "搭乗口", entries[0].Japanese)
		assert.Equal(t, []string{"改札", "出口", "入口"}, entries[0].Distractors)
		assert.Equal(t, 1, entries[0].WrongCount)
		assert.False(t, entries[0].LastWrongAt.IsZero())
	})

	t.Run("repeat wrong answers increment and refresh the snapshot", func(t *testing.T) {
		ledger := NewLedger(filepath.Join(t.TempDir(), "wrong_answers.yml"))
		require.NoError(t, ledger.Record(word))

		edited := word
		edited.Japanese = "ゲート"
		require.NoError(t, ledger.Record(edited))

		entries, err := ledger.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 2, entries[0].WrongCount)
		assert.Equal(t, "ゲート", entries[0].Japanese)
	})

	t.Run("records survive reopening the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wrong_answers.yml")
		require.NoError(t, NewLedger(path).Record(word))

		entries, err := NewLedger(path).Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].WrongCount)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "review", "wrong_answers.yml")
		require.NoError(t, NewLedger(path).Record(word))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestLedger_Entries(t *testing.T) {
	t.Run("orders by wrong count then recency", func(t *testing.T) {
		ledger := NewLedger(filepath.Join(t.TempDir(), "wrong_answers.yml"))
		current := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		ledger.now = func() time.Time {
			current = current.Add(time.Minute)
			return current
		}

		twice := vocab.Word{ID: "twice", English: "baggage", Japanese: "手荷物"}
		older := vocab.Word{ID: "older", English: "gate", Japanese: "搭乗口"}
		newer := vocab.Word{ID: "newer", English: "customs", Japanese: "税関"}

		require.NoError(t, ledger.Record(older))
		require.NoError(t, ledger.Record(twice))
		require.NoError(t, ledger.Record(newer))
		require.NoError(t, ledger.Record(twice))

		entries, err := ledger.Entries()
		require.NoError(t, err)

		ids := lo.Map(entries, func(entry LedgerEntry, _ int) string { return entry.WordID })
		assert.Equal(t, []string{"twice", "newer", "older"}, ids)
	})

	t.Run("a missing file reads as empty", func(t *testing.T) {
		ledger := NewLedger(filepath.Join(t.TempDir(), "wrong_answers.yml"))

		entries, err := ledger.Entries()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("an empty file reads as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wrong_answers.yml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		entries, err := NewLedger(path).Entries()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("a corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wrong_answers.yml")
		require.NoError(t, os.WriteFile(path, []byte("word-1: [unclosed"), 0o644))

		_, err := NewLedger(path).Entries()
		assert.Error(t, err)
	})
}

func TestLedger_DeleteAndClear(t *testing.T) {
	gate := vocab.Word{ID: "word-1", English: "gate", Japanese: "搭乗口"}
	baggage := vocab.Word{ID: "word-2", English: "baggage", Japanese: "手荷物"}

	t.Run("delete removes a single record", func(t *testing.T) {
		ledger := NewLedger(filepath.Join(t.TempDir(), "wrong_answers.yml"))
		require.NoError(t, ledger.Record(gate))
		require.NoError(t, ledger.Record(baggage))

		require.NoError(t, ledger.Delete("word-1"))

		entries, err := ledger.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "word-2", entries[0].WordID)
	})

	t.Run("deleting an absent id is a no-op", func(t *testing.T) {
		ledger := NewLedger(filepath.Join(t.TempDir(), "wrong_answers.yml"))
		require.NoError(t, ledger.Record(gate))

		require.NoError(t, ledger.Delete("no-such-word"))

		entries, err := ledger.Entries()
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("clear removes everything", func(t *testing.T) {
		ledger := NewLedger(filepath.Join(t.TempDir(), "wrong_answers.yml"))
		require.NoError(t, ledger.Record(gate))
		require.NoError(t, ledger.Record(baggage))

		require.NoError(t, ledger.Clear())

		entries, err := ledger.Entries()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
