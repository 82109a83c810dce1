package deepmerge

// Simple folds sources left to right into a fresh record using reduced
// classification: only records are merged recursively. Everything else
// (sequences, sets, ordered maps, dates, primitives) is opaque and
// overwritten whole by later sources. Cycle detection and
// nil-source skipping behave exactly as in Merge.
func Simple(sources ...any) any {
	return simpleFold(make(map[string]any), make(tracker), sources)
}

func simpleFold(acc map[string]any, seen tracker, sources []any) any {
	for _, s := range sources {
		if s == nil {
			continue
		}
		rec, ok := s.(map[string]any)
		if !ok {
			return s
		}
		if rec == nil {
			continue
		}
		if dst, ok := seen.visited(rec); ok {
			return dst
		}
		seen.register(rec, acc)
		for _, key := range sortedKeys(rec) {
			sv := rec[key]
			if nested, ok := sv.(map[string]any); ok && nested != nil {
				cur, ok := acc[key].(map[string]any)
				if !ok || cur == nil {
					cur = make(map[string]any)
				}
				acc[key] = simpleFold(cur, seen, []any{nested})
				continue
			}
			acc[key] = sv
		}
	}
	return acc
}
