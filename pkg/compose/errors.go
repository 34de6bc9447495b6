package compose

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("compose: aborted")
	// ErrUnresolvedRef is returned when a field references a component the
	// resolver does not know.
	ErrUnresolvedRef = errors.New("compose: unresolved component reference")
)
