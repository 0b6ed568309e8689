package review

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

// LedgerEntry is one word's wrong-answer record. The english, japanese and
// distractor fields are a snapshot taken at the most recent wrong answer,
// so the weak-words queue stays usable even after the word is edited or
// its project is deleted.
type LedgerEntry struct {
	WordID      string    `yaml:"word_id"`
	ProjectID   string    `yaml:"project_id"`
	English     string    `yaml:"english"`
	Japanese    string    `yaml:"japanese"`
	Distractors []string  `yaml:"distractors"`
	WrongCount  int       `yaml:"wrong_count"`
	LastWrongAt time.Time `yaml:"last_wrong_at"`
}

// Ledger stores wrong answers in a single YAML file keyed by word id,
// rewritten whole on every mutation. Entries are only removed through
// Delete or Clear, never as a side effect of studying.
type Ledger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewLedger returns a ledger backed by the YAML file at path. A missing
// file reads as an empty ledger.
func NewLedger(path string) *Ledger {
	return &Ledger{
		path: path,
		now:  time.Now,
	}
}

// Record counts one wrong answer for word: a first offense is inserted
// with a count of one, a repeat increments the count. The snapshot fields
// are refreshed either way.
func (l *Ledger) Record(word vocab.Word) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return err
	}

	entry := entries[word.ID]
	entry.WordID = word.ID
	entry.ProjectID = word.ProjectID
	entry.English = word.English
	entry.Japanese = word.Japanese
	entry.Distractors = append([]string(nil), word.Distractors...)
	entry.WrongCount++
	entry.LastWrongAt = l.now().UTC()
	entries[word.ID] = entry

	return l.save(entries)
}

// Entries returns every record ordered by wrong count, most recently
// missed first among equal counts.
func (l *Ledger) Entries() ([]LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return nil, err
	}

	out := make([]LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WrongCount != out[j].WrongCount {
			return out[i].WrongCount > out[j].WrongCount
		}
		return out[i].LastWrongAt.After(out[j].LastWrongAt)
	})
	return out, nil
}

// Delete removes one word's record. Deleting an absent id is a no-op.
func (l *Ledger) Delete(wordID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return err
	}
	if _, ok := entries[wordID]; !ok {
		return nil
	}
	delete(entries, wordID)
	return l.save(entries)
}

// Clear removes every record.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(map[string]LedgerEntry{})
}

func (l *Ledger) load() (map[string]LedgerEntry, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]LedgerEntry{}, nil
		}
		return nil, fmt.Errorf("os.Open(%s) > %w", l.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries := map[string]LedgerEntry{}
	if err := yaml.NewDecoder(file).Decode(&entries); err != nil {
		// An empty file is an empty ledger.
		if errors.Is(err, io.EOF) {
			return map[string]LedgerEntry{}, nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder(%s).Decode() > %w", l.path, err)
	}
	return entries, nil
}

func (l *Ledger) save(entries map[string]LedgerEntry) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(l.path), err)
	}
	file, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", l.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewEncoder(file).Encode(entries); err != nil {
		return fmt.Errorf("yaml.NewEncoder(%s).Encode() > %w", l.path, err)
	}
	return nil
}
