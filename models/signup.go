// File: models/signup.go
package models

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned for review decisions outside
// {Accepted, Rejected}.
var ErrInvalidStatus = errors.New("invalid signup status")

// SignupStatus is the lifecycle state of a signup. Pending is the only
// initial state; Accepted and Rejected are terminal.
type SignupStatus string

const (
	StatusPending  SignupStatus = "Pending"
	StatusAccepted SignupStatus = "Accepted"
	StatusRejected SignupStatus = "Rejected"
)

// ParseReviewStatus validates an organisation's review decision. Only the two
// terminal states are accepted; "Pending" and anything else is invalid.
func ParseReviewStatus(raw string) (SignupStatus, error) {
	switch SignupStatus(raw) {
	case StatusAccepted, StatusRejected:
		return SignupStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Signup is a volunteer's registration for an event role.
type Signup struct {
	ID          int          `json:"id"`
	VolunteerID int          `json:"volunteer_id"`
	RoleID      int          `json:"role_id"`
	Status      SignupStatus `json:"status"`
}

// SignupView is a signup joined with role and event context for the
// view_signups listings.
type SignupView struct {
	ID            int          `json:"id"`
	Status        SignupStatus `json:"status"`
	RoleName      string       `json:"role_name"`
	EventName     string       `json:"event_name"`
	EventDate     string       `json:"event_date"`
	VolunteerName string       `json:"volunteer_name,omitempty"`
}
