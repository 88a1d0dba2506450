package rut

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler using the bare notation.
func (r RUT) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse. Empty text
// decodes to the zero value.
func (r *RUT) UnmarshalText(text []byte) error {
	return r.decodeOptional(string(text))
}

// MarshalJSON encodes r as a JSON string in bare notation. The zero value is null.
func (r RUT) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts a JSON string in any notation. null leaves r untouched;
// an empty string decodes to the zero value.
func (r *RUT) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Input: string(data), Err: err}
	}
	return r.decodeOptional(s)
}

// Value implements driver.Valuer. The zero value is stored as NULL.
func (r RUT) Value() (driver.Value, error) {
	if r.IsZero() {
		return nil, nil
	}
	return r.String(), nil
}

// Scan implements sql.Scanner for text columns. NULL scans to the zero value.
func (r *RUT) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = RUT{}
		return nil
	case string:
		return r.decode(v)
	case []byte:
		return r.decode(string(v))
	default:
		return &DecodeError{Input: fmt.Sprint(src), Err: fmt.Errorf("unsupported column type %T", src)}
	}
}

// decodeOptional is decode with "" mapped to the zero value, so the zero
// value survives a marshal/unmarshal cycle.
func (r *RUT) decodeOptional(s string) error {
	if s == "" {
		*r = RUT{}
		return nil
	}
	return r.decode(s)
}

func (r *RUT) decode(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return &DecodeError{Input: s, Err: err}
	}
	*r = parsed
	return nil
}
