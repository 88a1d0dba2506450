// Package validator builds declarative, translation-friendly validation for
// request parameters and CLI flags.
//
// Each helper returns a Rule pairing a check with a ValidationError. Apply
// evaluates a list of rules and returns every failure as ValidationErrors,
// which implements error and matches ErrValidationFailed:
//
//	err := validator.Apply(
//	    validator.BodyInRange("min", lo),
//	    validator.BodyInRange("max", hi),
//	    validator.BodyOrder("min", lo, hi),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Map() → {"min": ["..."]}
//	}
//
// RUT-specific rules (ValidRUT, RUTInRange, BodyInRange, BodyOrder,
// ValidNotation) sit next to a small set of generic ones (Required, MaxLen,
// MinNum, MaxNum, InList, RequiredSlice, MaxLenSlice).
package validator
