package rut

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MarshalBSONValue implements bson.ValueMarshaler. RUTs are stored as BSON
// strings in bare notation; the zero value is stored as null.
func (r RUT) MarshalBSONValue() (byte, []byte, error) {
	if r.IsZero() {
		return byte(bson.TypeNull), nil, nil
	}
	typ, data, err := bson.MarshalValue(r.String())
	return byte(typ), data, err
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (r *RUT) UnmarshalBSONValue(typ byte, data []byte) error {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}
	if raw.Type == bson.TypeNull {
		*r = RUT{}
		return nil
	}

	s, ok := raw.StringValueOK()
	if !ok {
		return &DecodeError{Input: raw.String(), Err: fmt.Errorf("unsupported BSON type %s", raw.Type)}
	}
	return r.decode(s)
}
