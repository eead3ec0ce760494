package repository

import "errors"

var (
	// ErrNotFound is returned when the target row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint would be violated.
	ErrDuplicate = errors.New("duplicate")

	// ErrAlreadyAssigned is returned by AssignTraveller when the order
	// already has a traveller. Distinguishes the lost side of an accept
	// race from a missing order.
	ErrAlreadyAssigned = errors.New("already assigned")
)
