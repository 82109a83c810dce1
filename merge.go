package deepmerge

import (
	"sort"
	"time"
)

// Merge folds sources left to right into a fresh record using
// DefaultOptions. Later sources override earlier ones; nil sources are
// skipped. A non-record source terminates the fold and becomes the
// result of the whole call.
//
// Record graphs may be cyclic: a source record appearing a second time
// (directly or through a back-edge) resolves to the destination already
// being built for it, and that destination is returned immediately,
// abandoning any remaining sources. See the package documentation.
func Merge(sources ...any) any {
	return WithOptions(Options{}, sources...)
}

// WithOptions is Merge with explicit options. User options are resolved
// over the defaults once, then shared by all recursive calls.
func WithOptions(opts Options, sources ...any) any {
	e := &engine{opts: resolveOptions(opts), seen: make(tracker)}
	return e.fold(make(map[string]any), sources)
}

// engine carries the per-call state: resolved options and the cycle
// tracker shared across all recursion into nested records.
type engine struct {
	opts Options
	seen tracker
}

// fold merges each source into acc in order and returns the result.
// Source-count iteration is flat; recursion depth is bounded by input
// nesting only.
func (e *engine) fold(acc map[string]any, sources []any) any {
	for _, s := range sources {
		if s == nil {
			continue
		}
		rec, ok := s.(map[string]any)
		if !ok {
			// Top-level merge targets are expected to be records; a
			// non-record source immediately becomes the result.
			return s
		}
		if rec == nil {
			continue
		}
		if dst, ok := e.seen.visited(rec); ok {
			// Back-edge: terminal for the whole call, not just this
			// source. Remaining sources are abandoned.
			return dst
		}
		e.seen.register(rec, acc)
		for _, key := range sortedKeys(rec) {
			e.mergeField(acc, key, rec[key])
		}
	}
	return acc
}

// mergeField merges one source field into acc[key]. Custom merge
// functions win over the built-in dispatch; otherwise the source value's
// kind selects the strategy. The existing accumulator value is coerced to
// an empty collection of the source's kind when absent or mismatched.
func (e *engine) mergeField(acc map[string]any, key string, sv any) {
	if fn, ok := e.opts.CustomMerge[TypeTag(sv)]; ok {
		acc[key] = fn(acc[key], sv)
		return
	}

	switch KindOf(sv) {
	case KindMap:
		e.mergeMapField(acc, key, sv.(*Map))
	case KindSet:
		e.mergeSetField(acc, key, sv.(*Set))
	case KindSequence:
		e.mergeSequenceField(acc, key, sv.([]any))
	case KindDate:
		e.mergeDateField(acc, key, sv.(time.Time))
	case KindRecord:
		cur, ok := acc[key].(map[string]any)
		if !ok || cur == nil {
			cur = make(map[string]any)
		}
		acc[key] = e.fold(cur, []any{sv})
	default:
		acc[key] = sv
	}
}

func (e *engine) mergeMapField(acc map[string]any, key string, sv *Map) {
	switch e.opts.MapStrategy {
	case StrategyReplace:
		acc[key] = cloneAssoc(sv)
	default:
		cur, _ := acc[key].(*Map)
		acc[key] = mergeEntries(cur, sv)
	}
}

func (e *engine) mergeSetField(acc map[string]any, key string, sv *Set) {
	switch e.opts.SetStrategy {
	case StrategyReplace:
		acc[key] = sv.Clone()
	default:
		cur, ok := acc[key].(*Set)
		if !ok || cur == nil {
			cur = NewSet()
		}
		acc[key] = union(cur, sv)
	}
}

func (e *engine) mergeSequenceField(acc map[string]any, key string, sv []any) {
	switch e.opts.ArrayStrategy {
	case StrategyUnique:
		cur, _ := acc[key].([]any)
		acc[key] = dedupe(cur, sv)
	case StrategyReplace:
		// Direct reference to the source sequence, no copy.
		acc[key] = sv
	default:
		cur, _ := acc[key].([]any)
		merged := make([]any, 0, len(cur)+len(sv))
		merged = append(merged, cur...)
		merged = append(merged, sv...)
		acc[key] = merged
	}
}

func (e *engine) mergeDateField(acc map[string]any, key string, sv time.Time) {
	cur, ok := acc[key].(time.Time)
	if !ok {
		acc[key] = sv
		return
	}
	switch e.opts.DateStrategy {
	case StrategyKeepEarlier:
		// Strictly earlier wins, so the source wins ties.
		if !cur.Before(sv) {
			acc[key] = sv
		}
	case StrategyKeepLater:
		if !cur.After(sv) {
			acc[key] = sv
		}
	default:
		acc[key] = sv
	}
}

// dedupe concatenates two sequences and removes duplicates by deep
// equality, keeping first occurrences.
func dedupe(cur, src []any) []any {
	merged := make([]any, 0, len(cur)+len(src))
	for _, seq := range [][]any{cur, src} {
		for _, v := range seq {
			present := false
			for _, m := range merged {
				if Equal(m, v) {
					present = true
					break
				}
			}
			if !present {
				merged = append(merged, v)
			}
		}
	}
	return merged
}

// sortedKeys returns a record's keys in sorted order. Go maps iterate
// randomly; sorting keeps merge traversal deterministic.
func sortedKeys(rec map[string]any) []string {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
