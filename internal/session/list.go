package session

import (
	"sync"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

// MergeWords folds latest into current: entries current already holds are
// refreshed in place (matched by id) and unseen words are appended at the
// end. The order of current is preserved and nothing is removed, so a
// background sync can never move or drop the entry a learner is sitting
// on. Deletions propagate when the next session starts fresh.
func MergeWords(current, latest []vocab.Word) []vocab.Word {
	byID := make(map[string]vocab.Word, len(latest))
	for _, word := range latest {
		byID[word.ID] = word
	}

	merged := make([]vocab.Word, 0, len(current))
	seen := make(map[string]struct{}, len(current))
	for _, word := range current {
		if updated, ok := byID[word.ID]; ok {
			word = updated
		}
		merged = append(merged, word)
		seen[word.ID] = struct{}{}
	}
	for _, word := range latest {
		if _, ok := seen[word.ID]; !ok {
			merged = append(merged, word)
		}
	}
	return merged
}

// List is the word order a session pages through, safe for concurrent
// use by the interactive loop and a background refresher.
type List struct {
	mu    sync.RWMutex
	words []vocab.Word
}

// NewList returns a list over a copy of words.
func NewList(words []vocab.Word) *List {
	copied := make([]vocab.Word, len(words))
	copy(copied, words)
	return &List{words: copied}
}

// Len returns the current number of words.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.words)
}

// At returns the word at index, reporting false when index is out of
// range.
func (l *List) At(index int) (vocab.Word, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.words) {
		return vocab.Word{}, false
	}
	return l.words[index], true
}

// Words returns a copy of the current order.
func (l *List) Words() []vocab.Word {
	l.mu.RLock()
	defer l.mu.RUnlock()
	copied := make([]vocab.Word, len(l.words))
	copy(copied, l.words)
	return copied
}

// IDs returns the current order as word ids.
func (l *List) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.words))
	for _, word := range l.words {
		ids = append(ids, word.ID)
	}
	return ids
}

// Merge folds latest into the list under the MergeWords rules.
func (l *List) Merge(latest []vocab.Word) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.words = MergeWords(l.words, latest)
}
