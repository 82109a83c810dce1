package deepmerge

// Set is a collection of unique values. Uniqueness is by deep equality
// (see Equal), so records, sequences, and other composites can be
// elements. Iteration follows insertion order.
type Set struct {
	elems []any
}

// NewSet creates a set from the given values, dropping duplicates and
// keeping first occurrences.
func NewSet(values ...any) *Set {
	s := &Set{elems: make([]any, 0, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value if no equal element is already present.
// Returns true if the value was added.
func (s *Set) Add(v any) bool {
	if s.Has(v) {
		return false
	}
	s.elems = append(s.elems, v)
	return true
}

// Has reports whether an equal element is present.
func (s *Set) Has(v any) bool {
	for _, e := range s.elems {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.elems)
}

// Values returns the elements in insertion order. The returned slice is
// a copy; the elements themselves are shared.
func (s *Set) Values() []any {
	out := make([]any, len(s.elems))
	copy(out, s.elems)
	return out
}

// Clone returns a new set with the same elements. Elements are shared,
// not copied.
func (s *Set) Clone() *Set {
	return &Set{elems: s.Values()}
}

// union returns a new set holding dst's elements in their order followed
// by src elements not already present.
func union(dst, src *Set) *Set {
	u := dst.Clone()
	for _, v := range src.elems {
		u.Add(v)
	}
	return u
}
