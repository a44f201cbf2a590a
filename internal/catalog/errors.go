package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no service exists with the given ID
	ErrServiceNotFound = errors.New("service not found")

	// ErrStylistNotFound is returned when no stylist exists with the given ID
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrSlotNotFound is returned when a time slot is not in the fixed slot list
	ErrSlotNotFound = errors.New("time slot not found")
)
