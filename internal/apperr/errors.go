// Package apperr holds the sentinel errors shared by workspace operations and
// the command boundary that maps them to exit codes.
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	// ErrDeclined means the user answered no at a confirmation prompt.
	ErrDeclined = errors.New("operation cancelled")
)
