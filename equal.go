package deepmerge

import (
	"reflect"
	"time"
)

// Equal reports deep equality between two mergeable values. Records and
// sequences compare element-wise, sets compare as unordered collections,
// ordered maps compare entry-wise ignoring entry order, and dates compare
// by instant. This is the equality the engine uses for set membership and
// for the "unique" sequence strategy.
func Equal(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch va := a.(type) {
	case map[string]any:
		vb, ok := b.(map[string]any)
		if !ok {
			return false
		}
		return recordsEqual(va, vb)
	case []any:
		vb, ok := b.([]any)
		if !ok {
			return false
		}
		return sequencesEqual(va, vb)
	case *Set:
		vb, ok := b.(*Set)
		if !ok {
			return false
		}
		if va == nil || vb == nil {
			return va == vb
		}
		return setsEqual(va, vb)
	case *Map:
		vb, ok := b.(*Map)
		if !ok {
			return false
		}
		if va == nil || vb == nil {
			return va == vb
		}
		return assocsEqual(va, vb)
	case time.Time:
		vb, ok := b.(time.Time)
		if !ok {
			return false
		}
		return va.Equal(vb)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func recordsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !Equal(va, vb) {
			return false
		}
	}
	return true
}

func sequencesEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func setsEqual(a, b *Set) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, v := range a.elems {
		if !b.Has(v) {
			return false
		}
	}
	return true
}

func assocsEqual(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for pair := a.Oldest(); pair != nil; pair = pair.Next() {
		vb, ok := b.Get(pair.Key)
		if !ok || !Equal(pair.Value, vb) {
			return false
		}
	}
	return true
}
