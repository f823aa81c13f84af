// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver errors themselves.
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by id matches no row.  Entity
// specific errors wrap it so callers can test either one with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrConstraintViolation is returned when a write is rejected by the
// store because a foreign key or a required column is violated.  The
// write has no effect when this error is returned.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrVenueNotFound indicates that a venue was not located in the DB.
var ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)

// ErrArtistNotFound indicates that an artist was not located in the DB.
var ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = fmt.Errorf("show %w", ErrNotFound)
