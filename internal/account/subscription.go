// Package account talks to the billing/session backend for subscription
// status. The status decides which storage backend a caller is routed to.
package account

import "time"

// Status is a subscription tier reported by the billing backend.
type Status string

const (
	// StatusActive is the paid tier; data is stored in the cloud backend.
	StatusActive Status = "active"
	// StatusFree is the default tier; data stays on the device.
	StatusFree Status = "free"
)

// Active reports whether the status routes to the cloud backend.
func (s Status) Active() bool {
	return s == StatusActive
}

// Subscription is the billing backend's answer for the current user.
type Subscription struct {
	UserID    string     `json:"user_id"`
	Status    Status     `json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
