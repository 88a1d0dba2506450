package rut

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler using the bare notation. The zero
// value is null.
func (r RUT) MarshalYAML() (any, error) {
	if r.IsZero() {
		return nil, nil
	}
	return r.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted;
// null and the empty string decode to the zero value.
func (r *RUT) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &DecodeError{Input: node.Value, Err: fmt.Errorf("line %d: expected a scalar", node.Line)}
	}
	if node.ShortTag() == "!!null" {
		*r = RUT{}
		return nil
	}
	return r.decodeOptional(node.Value)
}
