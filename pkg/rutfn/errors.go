package rutfn

import "errors"

var (
	// ErrUnknownOperation is returned by Lookup for unregistered names.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrRead is returned by Run when the input cannot be read.
	ErrRead = errors.New("failed to read input")

	// ErrWrite is returned by Run when the output cannot be written.
	ErrWrite = errors.New("failed to write output")
)

// Error is a failure reduced to its display text.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func flatten(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Message: err.Error()}
}
