// Package rut validates, parses, formats and generates Chilean national
// identifier numbers (Rol Único Tributario).
//
// A RUT is a numeric body in the range 1.000.000 to 99.999.999 paired with a
// single check symbol (0-9 or K) derived from the body by a modulo-11
// weighted checksum. The check digit is never stored independently: every
// constructor computes it from the body, so a RUT value is always consistent.
//
// # Usage
//
//	import "github.com/dmitrymomot/rutkit/pkg/rut"
//
//	r, err := rut.Parse("17.951.585-7")
//	if err != nil {
//	    var mismatch *rut.MismatchError
//	    if errors.As(err, &mismatch) {
//	        // mismatch.Have, mismatch.Want
//	    }
//	    return err
//	}
//
//	r.Format(rut.Bare) // "179515857"
//	r.Format(rut.Dash) // "17951585-7"
//	r.Format(rut.Dots) // "17.951.585-7"
//
// Parsing is lenient about decoration: every '.' and '-' is discarded before
// the digits are read, so "1795.1585-7" is accepted as well. Formatting is
// strict and deterministic.
//
// # Construction
//
//   - New builds a RUT from a body number.
//   - Parse and MustParse read any of the three notations.
//   - Random and RandomInRange draw uniformly from the legal range.
//   - Generator does the same with a caller-supplied rand.Source.
//
// # Serialization
//
// RUT implements encoding.TextMarshaler, json.Marshaler, sql.Scanner,
// driver.Valuer, yaml.Marshaler and bson.ValueMarshaler (plus the matching
// unmarshalers). All of them use the bare notation on the way out and the
// full Parse algorithm on the way in.
//
// # Errors
//
// Failures are reported with sentinel errors (ErrEmptyInput, ErrNotANumber,
// ErrOutOfRange, ErrCheckDigitOutOfBounds, ErrInvalidCheckDigit, ...) that can
// be matched with errors.Is. A check digit mismatch is reported as
// *MismatchError, which carries both the claimed and the expected symbol.
package rut
