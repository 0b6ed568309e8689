package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Record is one saved session: the shuffled word order and the position
// the learner was at.
type Record struct {
	WordIDs      []string  `yaml:"word_ids"`
	CurrentIndex int       `yaml:"current_index"`
	SavedAt      time.Time `yaml:"saved_at"`
}

// Store keeps one YAML file per session key in a directory. Every save
// overwrites the whole record, so saving is idempotent and safe to call
// on every index change and every exit path.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore returns a store writing under dir.
func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
		now: time.Now,
	}
}

// Save overwrites the record for key with the given order and position.
func (s *Store) Save(key Key, wordIDs []string, currentIndex int) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", s.dir, err)
	}

	path := filepath.Join(s.dir, key.filename())
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	record := Record{
		WordIDs:      wordIDs,
		CurrentIndex: currentIndex,
		SavedAt:      s.now().UTC(),
	}
	if err := yaml.NewEncoder(file).Encode(record); err != nil {
		return fmt.Errorf("yaml.NewEncoder(%s).Encode() > %w", path, err)
	}
	return nil
}

// Load returns the saved record for key, or nil when none exists.
func (s *Store) Load(key Key) (*Record, error) {
	path := filepath.Join(s.dir, key.filename())
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var record Record
	if err := yaml.NewDecoder(file).Decode(&record); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder(%s).Decode() > %w", path, err)
	}
	return &record, nil
}

// Delete removes the record for key. Deleting an absent record is a
// no-op.
func (s *Store) Delete(key Key) error {
	path := filepath.Join(s.dir, key.filename())
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove(%s) > %w", path, err)
	}
	return nil
}
