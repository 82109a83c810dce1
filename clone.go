package deepmerge

// Clone returns a deep copy of a mergeable value. Records, sequences,
// sets, and ordered maps are copied recursively; dates and primitives are
// returned as-is. Useful for detaching a merge result from sources that
// the replace strategy may have aliased into it.
//
// Clone does not track cycles; cloning a cyclic record graph will not
// terminate.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneRecord(val)
	case []any:
		return cloneSequence(val)
	case *Set:
		if val == nil {
			return val
		}
		cloned := &Set{elems: make([]any, len(val.elems))}
		for i, e := range val.elems {
			cloned.elems[i] = Clone(e)
		}
		return cloned
	case *Map:
		if val == nil {
			return val
		}
		dst := NewMap()
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			dst.Set(pair.Key, Clone(pair.Value))
		}
		return dst
	default:
		return v
	}
}

func cloneRecord(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, val := range src {
		dst[key] = Clone(val)
	}
	return dst
}

func cloneSequence(src []any) []any {
	if src == nil {
		return nil
	}
	dst := make([]any, len(src))
	for i, val := range src {
		dst[i] = Clone(val)
	}
	return dst
}
