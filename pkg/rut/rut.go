package rut

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MinBody is the smallest legal RUT body.
	MinBody uint32 = 1_000_000
	// MaxBody is the largest legal RUT body.
	MaxBody uint32 = 99_999_999
)

// RUT is a validated body number with its derived check digit.
// The zero value is not a legal RUT; use New, Parse or Random.
type RUT struct {
	body  uint32
	check CheckDigit
}

// Min returns the RUT with the smallest legal body (1.000.000-9).
func Min() RUT { return RUT{body: MinBody, check: Nine} }

// Max returns the RUT with the largest legal body (99.999.999-9).
func Max() RUT { return RUT{body: MaxBody, check: Nine} }

// New validates body and computes its check digit.
func New(body uint32) (RUT, error) {
	if body < MinBody || body > MaxBody {
		return RUT{}, fmt.Errorf("%w: %d", ErrOutOfRange, body)
	}

	check, err := ComputeCheckDigit(body)
	if err != nil {
		return RUT{}, err
	}

	return RUT{body: body, check: check}, nil
}

var decoration = strings.NewReplacer(".", "", "-", "")

// Strip removes every '.' and '-' from s.
//
//	rut.Strip("17.951.585-7") // "179515857"
func Strip(s string) string {
	return decoration.Replace(s)
}

// Parse reads a RUT in any notation. Dots and dashes are discarded wherever
// they appear; the last remaining character is the claimed check digit and
// must match the one computed from the body.
func Parse(s string) (RUT, error) {
	sans := Strip(s)
	if sans == "" {
		return RUT{}, ErrEmptyInput
	}

	have, size := utf8.DecodeLastRuneInString(sans)
	digits := sans[:len(sans)-size]

	body, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return RUT{}, fmt.Errorf("%w: %w", ErrNotANumber, err)
	}

	want, err := New(uint32(body))
	if err != nil {
		return RUT{}, err
	}

	claimed, err := CheckDigitFromChar(have)
	if err != nil {
		return RUT{}, err
	}

	if claimed != want.check {
		return RUT{}, &MismatchError{Have: have, Want: want.check.Char()}
	}

	return want, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) RUT {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("rut: MustParse(%q): %v", s, err))
	}
	return r
}

// Body returns the numeric part without the check digit.
func (r RUT) Body() uint32 { return r.body }

// CheckDigit returns the derived check digit.
func (r RUT) CheckDigit() CheckDigit { return r.check }

// IsZero reports whether r is the zero value.
func (r RUT) IsZero() bool { return r.body == 0 }

// String returns the bare notation, or "" for the zero value.
func (r RUT) String() string {
	if r.IsZero() {
		return ""
	}
	return r.Format(Bare)
}

// Compare orders RUTs by body. The check digit carries no extra information.
func (r RUT) Compare(other RUT) int {
	switch {
	case r.body < other.body:
		return -1
	case r.body > other.body:
		return 1
	default:
		return 0
	}
}

// Less reports whether r sorts before other.
func (r RUT) Less(other RUT) bool { return r.body < other.body }

// Equal reports whether both RUTs have the same body and check digit.
func (r RUT) Equal(other RUT) bool {
	return r.body == other.body && r.check == other.check
}
