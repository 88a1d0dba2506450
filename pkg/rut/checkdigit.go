package rut

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// CheckDigit is the trailing symbol of a RUT. Its numeric value is 0-10,
// where 10 stands for K.
type CheckDigit uint8

const (
	Zero CheckDigit = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	K
)

// modulus is the number of check symbols.
const modulus = 11

var weights = [6]uint32{2, 3, 4, 5, 6, 7}

// ComputeCheckDigit derives the check digit of body. The digits are read
// from least to most significant, weighted by 2..7 cyclically and summed;
// the digit is 11 minus the sum modulo 11, with 10 written as K and 11 as 0.
func ComputeCheckDigit(body uint32) (CheckDigit, error) {
	var sum uint32
	for i := 0; ; i++ {
		sum += (body % 10) * weights[i%len(weights)]
		body /= 10
		if body == 0 {
			break
		}
	}

	whole := sum / modulus
	base := sum - modulus*whole
	return checkDigitFromChecksum(modulus - base)
}

func checkDigitFromChecksum(digit uint32) (CheckDigit, error) {
	switch {
	case digit >= 1 && digit <= 10:
		return CheckDigit(digit), nil
	case digit == modulus:
		return Zero, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrChecksumOutOfBounds, digit)
	}
}

// CheckDigitFromChar accepts '0'-'9', 'K' and 'k'.
func CheckDigitFromChar(c rune) (CheckDigit, error) {
	switch {
	case c >= '0' && c <= '9':
		return CheckDigit(c - '0'), nil
	case c == 'K' || c == 'k':
		return K, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrCheckDigitOutOfBounds, string(c))
	}
}

// ParseCheckDigit parses a single-symbol string.
func ParseCheckDigit(s string) (CheckDigit, error) {
	c, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("%w: %s", ErrCheckDigitOutOfBounds, s)
	}
	return CheckDigitFromChar(c)
}

// CheckDigitFromNumeric maps 0-10 to the matching check digit.
func CheckDigitFromNumeric(n uint32) (CheckDigit, error) {
	if n > uint32(K) {
		return 0, fmt.Errorf("%w: %s", ErrCheckDigitOutOfBounds, strconv.FormatUint(uint64(n), 10))
	}
	return CheckDigit(n), nil
}

// Numeric returns 0-10.
func (d CheckDigit) Numeric() uint32 { return uint32(d) }

// IsValid reports whether d is one of the 11 check symbols.
func (d CheckDigit) IsValid() bool { return d <= K }

// Char returns the canonical, uppercase symbol. Invalid values render as '?'.
func (d CheckDigit) Char() rune {
	switch {
	case d < K:
		return rune('0' + d)
	case d == K:
		return 'K'
	default:
		return '?'
	}
}

func (d CheckDigit) String() string { return string(d.Char()) }

// Compare orders check digits by numeric value, K last.
func (d CheckDigit) Compare(other CheckDigit) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}
