package composer

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("composer: aborted")
	// ErrInvalidChoice is returned when a driver reports a choice outside the
	// offered options.
	ErrInvalidChoice = errors.New("composer: invalid choice")
)
