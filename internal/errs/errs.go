// Package errs contains sentinel errors shared across layers for stable
// error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates no item exists with the requested name.
	ErrNotFound = errors.New("item not found")

	// ErrConflict indicates an item with the requested name already exists.
	ErrConflict = errors.New("item already exists")
)
