// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the roster.
	ErrAlreadySignedUp = errors.New("participant already signed up")
	// ErrParticipantNotFound is returned when the email is not on the roster.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrEmailRequired is returned for roster changes without a student email.
	ErrEmailRequired = errors.New("email is required")
)

// Activity is an extracurricular offering with a participant roster.
// MaxParticipants is advisory; signups past it are accepted.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// ActivityStore captures registry operations. Implementations must be safe
// for concurrent use and return copies the caller may retain. Participants
// keep signup order and never contain duplicates.
type ActivityStore interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	Signup(ctx context.Context, name, email string) error
	Remove(ctx context.Context, name, email string) error
}
