package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is returned when an operation needs a stored session and
	// none exists.
	ErrNoSession = errors.New("client: not logged in")
	// ErrUnauthorized is returned when the server rejects the session token.
	ErrUnauthorized = errors.New("client: session is no longer valid")
	// ErrVersionConflict is returned when a save carries a stale portfolio
	// version.
	ErrVersionConflict = errors.New("client: portfolio was modified by another session")
)

// APIError carries a non-success response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}
