package consultant

import "errors"

var (
	// ErrEmptyMessage is returned when the user text is blank
	ErrEmptyMessage = errors.New("message text is required")

	// ErrSessionBusy is returned when a send is already in flight for the
	// session; concurrent sends would interleave conversational turns.
	ErrSessionBusy = errors.New("a reply for this session is already in progress")

	// ErrEmptyCompletion is returned when the model produced no text
	ErrEmptyCompletion = errors.New("model returned an empty completion")
)
