package deepmerge

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a key-value collection with explicit, insertion-ordered entries,
// distinct from a record. Keys should be primitive comparables (strings,
// numbers, booleans); values may be any mergeable value.
type Map = orderedmap.OrderedMap[any, any]

// MapEntry is a key-value pair for constructing a Map.
type MapEntry struct {
	Key   any
	Value any
}

// NewMap creates an empty ordered map.
func NewMap() *Map {
	return orderedmap.New[any, any]()
}

// NewMapOf creates an ordered map from entries, in order. A repeated key
// keeps its first position and takes the last value.
func NewMapOf(entries ...MapEntry) *Map {
	m := NewMap()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// cloneAssoc returns a new ordered map with the same entries in the same
// order. Values are shared, not copied.
func cloneAssoc(src *Map) *Map {
	dst := NewMap()
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value)
	}
	return dst
}

// mergeEntries builds a new ordered map from dst's entries in their order
// followed by src-only entries in source order. A key present in both
// keeps its dst position and takes the src value.
func mergeEntries(dst, src *Map) *Map {
	merged := NewMap()
	if dst != nil {
		for pair := dst.Oldest(); pair != nil; pair = pair.Next() {
			merged.Set(pair.Key, pair.Value)
		}
	}
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		merged.Set(pair.Key, pair.Value)
	}
	return merged
}
