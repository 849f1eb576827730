package repository

import "errors"

// Sentinel values shared across repositories let higher layers
// distinguish failure scenarios without inspecting driver-specific
// errors.

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state. Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")
