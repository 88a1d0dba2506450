package rutfn

import (
	"fmt"
	"slices"
)

// Mapper transforms one value into another or fails.
type Mapper func(input string) (string, error)

// Predicate decides whether a value passes a filter.
type Predicate func(input string) bool

// Operation is a named map or filter stage. Exactly one of Map and Filter is set.
type Operation struct {
	Name   string
	Map    Mapper
	Filter Predicate
}

// IsFilter reports whether the operation drops values instead of transforming them.
func (o Operation) IsFilter() bool { return o.Filter != nil }

var operations = map[string]Operation{
	"bare":  {Name: "bare", Map: FormatBare},
	"dash":  {Name: "dash", Map: FormatDash},
	"dots":  {Name: "dots", Map: FormatDots},
	"valid": {Name: "valid", Filter: IsValid},
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, error) {
	op, ok := operations[name]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// MustLookup is like Lookup but panics for unknown names.
func MustLookup(name string) Operation {
	op, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return op
}

// Operations returns the registered operation names in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
