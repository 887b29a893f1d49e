package term

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("term: aborted")
	// ErrUnsupportedField is returned for fields no terminal widget can edit.
	ErrUnsupportedField = errors.New("term: unsupported field")
)
