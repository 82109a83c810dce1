// Package deepmerge provides deep structural merging of composite values
// with configurable per-kind conflict resolution.
//
// The package recognizes six kinds of value:
//
//   - Record:    map[string]any, merged key by key, recursively
//   - Sequence:  []any, combined per ArrayStrategy
//   - Set:       *deepmerge.Set, combined per SetStrategy
//   - Map:       *deepmerge.Map (insertion-ordered), combined per MapStrategy
//   - Date:      time.Time, resolved per DateStrategy
//   - Primitive: everything else, later sources overwrite earlier ones
//
// Sources are folded left to right into a fresh record, so later sources
// override earlier ones, the usual defaults-plus-overrides shape:
//
//	merged := deepmerge.Merge(defaults, userConfig, sessionOverrides)
//
// Collection strategies are selected through Options:
//
//	result := deepmerge.WithOptions(deepmerge.Options{
//	    ArrayStrategy: deepmerge.StrategyUnique,
//	    DateStrategy:  deepmerge.StrategyKeepLater,
//	}, defaults, overrides)
//
// Per-type overrides go through Options.CustomMerge, keyed by a value's
// type tag ("Date", "Array", "Set", "Map", "Object", or the Go type name
// for anything else):
//
//	opts := deepmerge.Options{
//	    CustomMerge: map[string]deepmerge.MergeFunc{
//	        "Date": func(target, source any) any { return target },
//	    },
//	}
//
// Record graphs may contain cycles. The engine tracks visited source
// records by identity and resolves back-edges to the in-progress
// destination, so a record that contains itself merges into a result
// that contains itself.
//
// Simple is a reduced variant that only distinguishes records from
// opaque values; sequences, sets, maps and dates are overwritten whole.
//
// For layered configuration with named, priority-ordered sources, see
// Stack. Path helpers (GetPath, SetPath, Flatten, ...) address nested
// record fields with dot-separated paths.
package deepmerge
