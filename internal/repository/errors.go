// Package repository defines sentinel errors shared by the data access
// layer.  Handlers use these values with errors.Is to pick an HTTP
// status; anything else coming out of a repository is a backend failure
// and maps to a 500.
package repository

import "errors"

// ErrNotFound is returned when an operation targets a reservation id
// that no longer exists in the store.  Handlers should translate this
// into an HTTP 404 response.
var ErrNotFound = errors.New("reservation not found")
