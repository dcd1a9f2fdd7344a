// Package service implements the reservation and checkout use cases on
// top of the repositories and the pure rules in the reservation and order
// packages.
package service

import "errors"

// ErrEditWindowClosed is returned when a pre-order change is attempted
// less than 36 hours before the reservation.
var ErrEditWindowClosed = errors.New("pre-order can only be changed at least 36 hours before the reservation")

// ErrConcluded is returned when editing a reservation whose time has
// already passed.
var ErrConcluded = errors.New("reservation has already concluded")

// ErrUnknownItem is returned when a pre-order or cart names a dish that is
// not on the menu.
var ErrUnknownItem = errors.New("unknown menu item")
