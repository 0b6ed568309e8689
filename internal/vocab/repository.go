package vocab

import "context"

//go:generate mockgen -source=repository.go -destination=../mocks/vocab/mock_repository.go -package=mock_vocab

// Repository is the storage contract both backends implement. Reads return
// (nil, nil) for an absent row; writes against a missing id fail with
// ErrNotFound; backend I/O failures wrap ErrUnavailable.
type Repository interface {
	CreateProject(ctx context.Context, ownerID, title string) (*Project, error)
	// GetProjects returns the owner's projects ordered newest first.
	GetProjects(ctx context.Context, ownerID string) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	// UpdateProject writes only the non-nil fields of update. An empty
	// update is a no-op, not an error.
	UpdateProject(ctx context.Context, id string, update ProjectUpdate) error
	// DeleteProject also deletes every word owned by the project.
	DeleteProject(ctx context.Context, id string) error

	// CreateWords inserts the batch atomically, assigning defaults
	// (status new, ease factor 2.5, interval 0, repetitions 0, not
	// favorite) and returns the created words in input order.
	CreateWords(ctx context.Context, projectID string, inputs []WordInput) ([]Word, error)
	// GetWords returns the project's words ordered oldest first. The
	// ordering is stable across calls so session shuffles stay
	// reproducible.
	GetWords(ctx context.Context, projectID string) ([]Word, error)
	GetWord(ctx context.Context, id string) (*Word, error)
	UpdateWord(ctx context.Context, id string, update WordUpdate) error
	DeleteWord(ctx context.Context, id string) error
	DeleteWordsByProject(ctx context.Context, projectID string) error
}
