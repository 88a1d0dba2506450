// Package rutfn exposes the rut package as standalone, single-input
// functions suitable for map and filter stages of a stream processor.
//
// Each entry point takes one text value and returns one result:
//
//	rutfn.FormatBare("17.951.585-7") // "179515857", nil
//	rutfn.FormatDash("179515857")    // "17951585-7", nil
//	rutfn.FormatDots("179515857")    // "17.951.585-7", nil
//	rutfn.IsValid("1.111.111-1")     // false
//
// Formatting failures are flattened into *Error values that carry only the
// human-readable message; no structured error codes cross this boundary.
// IsValid never reports an error, only the boolean outcome.
//
// # Streams
//
// Run applies a named operation (see Lookup) to every line of an io.Reader
// and writes the results to an io.Writer. Map operations emit one line per
// input line (the formatted value, or the error text unless WithSkipErrors
// is set); filter operations copy accepted lines and drop the rest.
// WithJSONLines switches both sides to JSON string framing, one value per
// line.
//
//	stats, err := rutfn.Run(ctx, os.Stdin, os.Stdout, rutfn.MustLookup("dots"),
//	    rutfn.WithLogger(log),
//	)
//
// Input lines are passed through Normalize first, which trims surrounding
// whitespace and folds full-width characters to their ASCII forms.
package rutfn
