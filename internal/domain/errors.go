package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// dish does not exist in the catalog.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation before it reaches
// the catalog (e.g. a malformed seed file entry).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
