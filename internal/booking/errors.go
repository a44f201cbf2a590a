package booking

import "errors"

var (
	// ErrFlowNotFound is returned when no flow exists with the given ID
	ErrFlowNotFound = errors.New("booking flow not found")

	// ErrInvalidTransition is returned when an action is not valid in the
	// flow's current step. The flow is left unchanged.
	ErrInvalidTransition = errors.New("action not valid in the current step")

	// ErrMissingDateTime is returned when confirming before both a date and
	// a time slot have been selected
	ErrMissingDateTime = errors.New("both date and time must be selected before confirming")

	// ErrCommitInFlight is returned when a transition is attempted while a
	// booking commit is already pending
	ErrCommitInFlight = errors.New("booking commit already in progress")

	// ErrEmptySelection is returned when a selection value is blank
	ErrEmptySelection = errors.New("selection must not be empty")
)
