package deepmerge

// Strategy names a policy for combining a target and source collection.
type Strategy string

const (
	// StrategyCombine concatenates sequences, unions sets, and merges map
	// entries. It is the default for sequences, sets, and maps.
	StrategyCombine Strategy = "combine"

	// StrategyUnique concatenates sequences and removes duplicates,
	// keeping first occurrences. Sequences only.
	StrategyUnique Strategy = "unique"

	// StrategyReplace discards the target collection in favor of the
	// source. It is the default for dates.
	StrategyReplace Strategy = "replace"

	// StrategyKeepEarlier keeps whichever of two dates is strictly
	// earlier. Dates only.
	StrategyKeepEarlier Strategy = "keepEarlier"

	// StrategyKeepLater keeps whichever of two dates is strictly later.
	// Dates only.
	StrategyKeepLater Strategy = "keepLater"
)

// MergeFunc combines a target and source value into a merged result.
// Custom merge functions are consulted before the built-in per-kind
// handling for every record field whose value matches their type tag.
type MergeFunc func(target, source any) any

// Options configures merge behavior for one top-level call.
// The zero value of each strategy field means "use the default".
type Options struct {
	// ArrayStrategy selects sequence handling: combine, unique, or
	// replace. Default: combine.
	ArrayStrategy Strategy

	// SetStrategy selects set handling: combine or replace.
	// Default: combine.
	SetStrategy Strategy

	// MapStrategy selects ordered-map handling: combine or replace.
	// Default: combine.
	MapStrategy Strategy

	// DateStrategy selects date handling: replace, keepEarlier, or
	// keepLater. Default: replace.
	DateStrategy Strategy

	// CustomMerge maps a type tag (see TypeTag) to a function that
	// overrides the built-in handling for values of that type.
	CustomMerge map[string]MergeFunc
}

// DefaultOptions returns the default merge configuration.
func DefaultOptions() Options {
	return Options{
		ArrayStrategy: StrategyCombine,
		SetStrategy:   StrategyCombine,
		MapStrategy:   StrategyCombine,
		DateStrategy:  StrategyReplace,
	}
}

// resolveOptions overlays user options onto the defaults field by field.
// Only empty fields take the default; unrecognized strategy strings pass
// through untouched and fall to the engine's own default cases, so a
// misspelled strategy behaves like the documented default rather than
// being rejected.
func resolveOptions(user Options) Options {
	resolved := DefaultOptions()
	if user.ArrayStrategy != "" {
		resolved.ArrayStrategy = user.ArrayStrategy
	}
	if user.SetStrategy != "" {
		resolved.SetStrategy = user.SetStrategy
	}
	if user.MapStrategy != "" {
		resolved.MapStrategy = user.MapStrategy
	}
	if user.DateStrategy != "" {
		resolved.DateStrategy = user.DateStrategy
	}
	if user.CustomMerge != nil {
		resolved.CustomMerge = user.CustomMerge
	}
	return resolved
}
