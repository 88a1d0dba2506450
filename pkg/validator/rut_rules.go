package validator

import (
	"fmt"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// ValidRUT fails unless value parses as a RUT in any notation.
// The message carries the parser's reason.
func ValidRUT(field, value string) Rule {
	_, err := rut.Parse(value)
	msg := "must be a valid RUT"
	if err != nil {
		msg = fmt.Sprintf("must be a valid RUT: %v", err)
	}
	return Rule{
		Check: func() bool { return err == nil },
		Error: ValidationError{
			Field:          field,
			Message:        msg,
			TranslationKey: "validation.rut",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// RUTInRange fails unless value parses and its body lies in [lo, hi].
func RUTInRange(field, value string, lo, hi uint32) Rule {
	return Rule{
		Check: func() bool {
			r, err := rut.Parse(value)
			return err == nil && r.Body() >= lo && r.Body() <= hi
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid RUT between %d and %d", lo, hi),
			TranslationKey: "validation.rut_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   lo,
				"max":   hi,
			},
		},
	}
}

// BodyInRange fails unless body is a legal RUT body.
func BodyInRange(field string, body uint32) Rule {
	return Rule{
		Check: func() bool { return body >= rut.MinBody && body <= rut.MaxBody },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d", rut.MinBody, rut.MaxBody),
			TranslationKey: "validation.rut_body",
			TranslationValues: map[string]any{
				"field": field,
				"min":   rut.MinBody,
				"max":   rut.MaxBody,
			},
		},
	}
}

// BodyOrder fails when lo is greater than hi.
func BodyOrder(field string, lo, hi uint32) Rule {
	return Rule{
		Check: func() bool { return lo <= hi },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("lower bound %d exceeds upper bound %d", lo, hi),
			TranslationKey: "validation.rut_order",
			TranslationValues: map[string]any{
				"field": field,
				"min":   lo,
				"max":   hi,
			},
		},
	}
}

// ValidNotation fails unless value names a RUT notation.
func ValidNotation(field, value string) Rule {
	_, err := rut.ParseNotation(value)
	names := make([]string, 0, len(rut.Notations))
	for _, n := range rut.Notations {
		names = append(names, n.String())
	}
	return Rule{
		Check: func() bool { return err == nil },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", names),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": names,
			},
		},
	}
}
