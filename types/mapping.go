package types

import (
	"errors"
	"fmt"
)

// ErrUnknownEnumValue indicates that a name or value has no mapping entry.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// Mapping is a two-way table between enumeration values and their wire names.
// Build one per enum type and use it to implement String and Parse pairs.
type Mapping[E comparable] struct {
	names  map[E]string
	values map[string]E
}

// NewMapping builds a Mapping from a value-to-name table.
// Names must be unique.
func NewMapping[E comparable](names map[E]string) Mapping[E] {
	values := make(map[string]E, len(names))
	for value, name := range names {
		values[name] = value
	}

	return Mapping[E]{
		names:  names,
		values: values,
	}
}

// Name returns the wire name of a value.
func (m Mapping[E]) Name(value E) (string, error) {
	name, ok := m.names[value]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownEnumValue, value)
	}

	return name, nil
}

// Value returns the value for a wire name.
func (m Mapping[E]) Value(name string) (E, error) {
	value, ok := m.values[name]
	if !ok {
		var zero E

		return zero, fmt.Errorf("%w: '%s'", ErrUnknownEnumValue, name)
	}

	return value, nil
}
