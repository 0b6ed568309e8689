package session

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/scanvocab/scanvocab/internal/vocab"
)

// Resolution is the outcome of reconciling a saved session against the
// live word pool: the working order and the index to resume at.
type Resolution struct {
	Words   []vocab.Word
	Index   int
	Resumed bool
}

// Reconciler restores saved study progress when it is still trustworthy
// and otherwise starts over. Its own failures never fail the study flow;
// the worst case is always a fresh shuffle.
type Reconciler struct {
	store     *Store
	freshness time.Duration
	rand      *rand.Rand
	now       func() time.Time
}

// NewReconciler returns a reconciler over store. Records older than
// freshness are discarded.
func NewReconciler(store *Store, freshness time.Duration, r *rand.Rand) *Reconciler {
	return &Reconciler{
		store:     store,
		freshness: freshness,
		rand:      r,
		now:       time.Now,
	}
}

// Resolve loads the record for key and checks it against live. The
// record is used only when it is readable, younger than the freshness
// window, and at least 80% of the live pool still resolves through it.
// A usable record rebuilds the saved order (dead ids dropped) and
// resumes at min(saved index, length-1); anything else starts a fresh
// shuffle at index zero.
func (r *Reconciler) Resolve(key Key, live []vocab.Word) Resolution {
	record, err := r.store.Load(key)
	if err != nil {
		slog.Warn("discarding unreadable session record", "key", key.String(), "err", err)
		return r.fresh(live)
	}
	if record == nil {
		return r.fresh(live)
	}
	if r.now().Sub(record.SavedAt) > r.freshness {
		return r.fresh(live)
	}

	byID := make(map[string]vocab.Word, len(live))
	for _, word := range live {
		byID[word.ID] = word
	}
	resolved := make([]vocab.Word, 0, len(record.WordIDs))
	for _, id := range record.WordIDs {
		if word, ok := byID[id]; ok {
			resolved = append(resolved, word)
		}
	}

	// Below 80% of the live pool the record is too stale to resume.
	if len(live) == 0 || len(resolved)*5 < len(live)*4 {
		return r.fresh(live)
	}

	index := record.CurrentIndex
	if index > len(resolved)-1 {
		index = len(resolved) - 1
	}
	if index < 0 {
		index = 0
	}
	return Resolution{Words: resolved, Index: index, Resumed: true}
}

// Save persists the current order and position for key. Errors are
// logged, not returned: losing a checkpoint must not interrupt studying.
func (r *Reconciler) Save(key Key, words []vocab.Word, index int) {
	ids := make([]string, 0, len(words))
	for _, word := range words {
		ids = append(ids, word.ID)
	}
	if err := r.store.Save(key, ids, index); err != nil {
		slog.Warn("saving session progress failed", "key", key.String(), "err", err)
	}
}

func (r *Reconciler) fresh(live []vocab.Word) Resolution {
	words := make([]vocab.Word, len(live))
	copy(words, live)
	r.rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return Resolution{Words: words, Index: 0}
}
