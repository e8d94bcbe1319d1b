// Package session holds signed-in state. A Session is created at sign-in,
// read on every request and deleted at sign-out; Redis expires it after TTL.
package session

import (
	"context"
	"errors"
	"student-dashboard/app/models"
	"time"
)

var ErrNotFound = errors.New("session not found")

// State is the outcome of resolving a request's session.
type State int

const (
	// StatePending means the session store could not answer yet.
	StatePending State = iota
	StateSignedOut
	StateSignedIn
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSignedOut:
		return "signed-out"
	case StateSignedIn:
		return "signed-in"
	default:
		return "unknown"
	}
}

type Session struct {
	ID        string         `json:"id"`
	Profile   models.Profile `json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Store persists sessions.
type Store interface {
	Create(ctx context.Context, profile models.Profile) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
