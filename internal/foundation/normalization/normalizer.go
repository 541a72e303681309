// Package normalization maps loosely written names from flags, environment
// variables and config files onto typed values.
package normalization

import "strings"

// Normalizer provides type-safe string-to-value lookup.
type Normalizer[T comparable] struct {
	values map[string]T
}

// NewNormalizer creates a normalizer from name/value pairs. Names are matched
// case-insensitively and ignoring surrounding whitespace.
func NewNormalizer[T comparable](values map[string]T) *Normalizer[T] {
	n := &Normalizer[T]{values: make(map[string]T, len(values))}
	for k, v := range values {
		n.values[clean(k)] = v
	}
	return n
}

// Lookup returns the value registered for raw.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
