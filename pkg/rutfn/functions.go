package rutfn

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// FormatBare parses input and renders it without separators.
func FormatBare(input string) (string, error) {
	return format(input, rut.Bare)
}

// FormatDash parses input and renders it with a dash before the check digit.
func FormatDash(input string) (string, error) {
	return format(input, rut.Dash)
}

// FormatDots parses input and renders it in thousands-grouped notation.
func FormatDots(input string) (string, error) {
	return format(input, rut.Dots)
}

// IsValid reports whether input parses as a RUT.
func IsValid(input string) bool {
	_, err := rut.Parse(input)
	return err == nil
}

// Normalize trims surrounding whitespace and folds full-width digits, letters
// and dashes (as produced by some East Asian input methods and PDF exports)
// to ASCII. Everything else is left for rut.Parse to judge.
func Normalize(input string) string {
	return width.Narrow.String(strings.TrimSpace(input))
}

func format(input string, n rut.Notation) (string, error) {
	r, err := rut.Parse(input)
	if err != nil {
		return "", flatten(err)
	}
	return r.Format(n), nil
}
