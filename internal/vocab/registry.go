package vocab

import (
	"fmt"
	"sync"

	"github.com/scanvocab/scanvocab/internal/account"
)

// Registry hands out the process-wide repository pair. It is constructed
// once at startup with the two backend constructors and builds each backend
// lazily, at most once for the process lifetime. A failed construction is
// not cached, so a later call can retry.
//
// Switching subscription tiers does not migrate rows between backends;
// words created on one tier are not visible from the other.
type Registry struct {
	mu        sync.Mutex
	local     Repository
	remote    Repository
	newLocal  func() (Repository, error)
	newRemote func() (Repository, error)
}

// NewRegistry creates a Registry from the two backend constructors.
func NewRegistry(newLocal, newRemote func() (Repository, error)) *Registry {
	return &Registry{
		newLocal:  newLocal,
		newRemote: newRemote,
	}
}

// ForSubscription returns the remote backend for an active subscription and
// the local backend otherwise.
func (r *Registry) ForSubscription(status account.Status) (Repository, error) {
	if status.Active() {
		return r.Remote()
	}
	return r.Local()
}

// Local returns the device-local backend, constructing it on first use.
func (r *Registry) Local() (Repository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.local != nil {
		return r.local, nil
	}
	repo, err := r.newLocal()
	if err != nil {
		return nil, fmt.Errorf("newLocal() > %w", err)
	}
	r.local = repo
	return repo, nil
}

// Remote returns the cloud backend, constructing it on first use.
func (r *Registry) Remote() (Repository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.remote != nil {
		return r.remote, nil
	}
	repo, err := r.newRemote()
	if err != nil {
		return nil, fmt.Errorf("newRemote() > %w", err)
	}
	r.remote = repo
	return repo, nil
}
