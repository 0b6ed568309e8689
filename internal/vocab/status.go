package vocab

// Status is the mastery classification of a word.
type Status string

const (
	StatusNew      Status = "new"
	StatusReview   Status = "review"
	StatusMastered Status = "mastered"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReview, StatusMastered:
		return true
	}
	return false
}
