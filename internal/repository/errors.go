// Package repository defines the stores that own persisted state and the
// error types they share.  These sentinel values allow higher layers such
// as handlers to distinguish between different failure scenarios.
package repository

import "errors"

// ErrNotFound is returned when no record has the requested ID.  Handlers
// translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a reservation would take a table that is
// already booked for the same date and time.  Handlers translate it into
// an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrCorruptRecord is returned when persisted data cannot be interpreted,
// for example a reservation whose date does not parse.  It is a hard
// failure; the data is never coerced into a plausible value.
var ErrCorruptRecord = errors.New("corrupt record")
