// Package session persists and restores in-flight study progress so a
// flashcard or quiz session survives restarts and background syncs.
package session

// Key identifies one study session's saved progress: the project being
// studied (empty for all projects) and whether the pool was filtered to
// favorites.
type Key struct {
	ProjectID     string
	FavoritesOnly bool
}

func (k Key) String() string {
	scope := "all"
	if k.ProjectID != "" {
		scope = k.ProjectID
	}
	if k.FavoritesOnly {
		return scope + "-favorites"
	}
	return scope
}

func (k Key) filename() string {
	return k.String() + ".yml"
}
