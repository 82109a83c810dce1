package deepmerge

import (
	"reflect"
	"time"
)

// Kind classifies a value for merge dispatch.
type Kind uint8

const (
	// KindPrimitive is any value the engine treats as opaque, including nil.
	KindPrimitive Kind = iota
	// KindSequence is an ordered []any list.
	KindSequence
	// KindSet is a *Set.
	KindSet
	// KindMap is a *Map, an insertion-ordered key-value collection.
	KindMap
	// KindDate is a time.Time instant.
	KindDate
	// KindRecord is a map[string]any merged key by key.
	KindRecord
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindDate:
		return "date"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// KindOf classifies a value. Classification is checked in priority order:
// absent, sequence, set, map, date, record, then primitive. A typed
// slice such as []string is primitive; only []any is a sequence. A nil
// *Set, nil *Map, or nil record is an absent value and classifies as
// primitive, so it overwrites rather than combines. A nil []any is an
// empty sequence, not an absent value.
func KindOf(v any) Kind {
	switch val := v.(type) {
	case nil:
		return KindPrimitive
	case []any:
		return KindSequence
	case *Set:
		if val == nil {
			return KindPrimitive
		}
		return KindSet
	case *Map:
		if val == nil {
			return KindPrimitive
		}
		return KindMap
	case time.Time:
		return KindDate
	case map[string]any:
		if val == nil {
			return KindPrimitive
		}
		return KindRecord
	default:
		return KindPrimitive
	}
}

// TypeTag returns the tag used to look up custom merge functions for a
// value: "Date", "Array", "Set", "Map", or "Object" for the built-in
// kinds, and the Go type name (e.g. "main.Version") for anything else.
// nil has no tag.
func TypeTag(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case time.Time:
		return "Date"
	case []any:
		return "Array"
	case *Set:
		return "Set"
	case *Map:
		return "Map"
	case map[string]any:
		return "Object"
	default:
		return reflect.TypeOf(v).String()
	}
}
