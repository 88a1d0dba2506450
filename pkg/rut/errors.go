package rut

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Parse when nothing is left after stripping decoration.
	ErrEmptyInput = errors.New("the provided string is empty")

	// ErrNotANumber is returned when the body portion is not an unsigned integer.
	ErrNotANumber = errors.New("provided string is not a number")

	// ErrOutOfRange is returned for bodies outside [MinBody, MaxBody].
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidRange is returned by RandomInRange when lo is greater than hi.
	ErrInvalidRange = fmt.Errorf("%w: lower bound exceeds upper bound", ErrOutOfRange)

	// ErrCheckDigitOutOfBounds is returned when a character or number is not one of the 11 check symbols.
	ErrCheckDigitOutOfBounds = errors.New("check digit out of bounds")

	// ErrChecksumOutOfBounds is returned when the checksum arithmetic yields no valid symbol.
	ErrChecksumOutOfBounds = errors.New("checksum out of bounds")

	// ErrInvalidCheckDigit is matched by *MismatchError.
	ErrInvalidCheckDigit = errors.New("invalid check digit")

	// ErrInvalidFormat is returned for unknown notations.
	ErrInvalidFormat = errors.New("invalid format")
)

// MismatchError reports a claimed check digit that differs from the computed one.
type MismatchError struct {
	Have rune
	Want rune
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("invalid check digit: have %c, want %c", e.Have, e.Want)
}

// Is makes errors.Is(err, ErrInvalidCheckDigit) hold for mismatches.
func (e *MismatchError) Is(target error) bool {
	return target == ErrInvalidCheckDigit
}

// DecodeError is returned by the unmarshalers when the encoded text is not a valid RUT.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rut: cannot decode %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
