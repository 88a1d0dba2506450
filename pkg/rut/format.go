package rut

import (
	"strconv"
	"strings"
)

// Notation selects the textual rendering of a RUT.
type Notation int

const (
	// Bare renders digits followed by the check digit: 179515857.
	Bare Notation = iota
	// Dash puts a dash before the check digit: 17951585-7.
	Dash
	// Dots groups the body in thousands, as printed on Chilean ID cards: 17.951.585-7.
	Dots
)

// Notations lists every supported notation in declaration order.
var Notations = []Notation{Bare, Dash, Dots}

func (n Notation) String() string {
	switch n {
	case Dash:
		return "dash"
	case Dots:
		return "dots"
	default:
		return "bare"
	}
}

// ParseNotation accepts "bare" (or "sans"), "dash" and "dots", case-insensitively.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bare", "sans":
		return Bare, nil
	case "dash":
		return Dash, nil
	case "dots":
		return Dots, nil
	default:
		return Bare, ErrInvalidFormat
	}
}

// Format renders r in the given notation. Unknown notations fall back to Bare.
func (r RUT) Format(n Notation) string {
	body := strconv.FormatUint(uint64(r.body), 10)

	switch n {
	case Dash:
		return body + "-" + r.check.String()
	case Dots:
		return groupThousands(body) + "-" + r.check.String()
	default:
		return body + r.check.String()
	}
}

// groupThousands takes chunks of up to three digits from the right and joins them with '.'.
func groupThousands(digits string) string {
	var result string
	for len(digits) > 0 {
		cut := max(len(digits)-3, 0)
		chunk := digits[cut:]
		digits = digits[:cut]

		if result == "" {
			result = chunk
		} else {
			result = chunk + "." + result
		}
	}
	return result
}
