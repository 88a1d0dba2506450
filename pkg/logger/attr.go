package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// RUT records an identifier under the key "rut" using its String form.
// The zero value yields an empty Attr.
func RUT(r fmt.Stringer) slog.Attr {
	if r == nil {
		return slog.Attr{}
	}
	s := r.String()
	if s == "" {
		return slog.Attr{}
	}
	return slog.String("rut", s)
}

// Input records raw user input under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Notation records a rendering name under the key "notation".
func Notation(n fmt.Stringer) slog.Attr {
	return slog.String("notation", n.String())
}

// Operation records a stream operation under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
