// Package sets provides a minimal generic hash set.
package sets

// Set is a hash set for comparable keys.
// Usage: s := sets.New("a", "b"); if !s.Insert("c") {...}
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Insert adds v and reports whether it was absent before.
func (s Set[T]) Insert(v T) bool {
	if s.Has(v) {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Has returns true if v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// FirstDuplicate returns the first key produced twice by key over items.
func FirstDuplicate[E any, K comparable](items []E, key func(E) K) (K, bool) {
	seen := make(Set[K], len(items))
	for _, it := range items {
		k := key(it)
		if !seen.Insert(k) {
			return k, true
		}
	}
	var zero K
	return zero, false
}
