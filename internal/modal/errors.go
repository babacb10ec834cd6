package modal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInCatalog is the cause of an open() for an unknown artwork.
	ErrNotInCatalog = errors.New("artwork not in catalog")
	// ErrNotOpen is the cause of navigation with no artwork on screen.
	ErrNotOpen = errors.New("no artwork is open")
)

// InvariantError reports a call that breaks a controller precondition. It
// points at a bug in the calling UI code, never at user input.
type InvariantError struct {
	Op        string
	ArtworkID int
	Err       error
}

func (e *InvariantError) Error() string {
	if e.ArtworkID != 0 {
		return fmt.Sprintf("modal %s(%d): %v", e.Op, e.ArtworkID, e.Err)
	}
	return fmt.Sprintf("modal %s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }
