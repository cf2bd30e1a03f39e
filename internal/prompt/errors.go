package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrUnknownFormat is returned for an output format outside pretty,
	// json and yaml.
	ErrUnknownFormat = errors.New("prompt: unknown output format")
)
