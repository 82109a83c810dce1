package deepmerge

import "strings"

// Path helpers address fields in nested records with dot-separated
// paths, e.g. "editor.tabSize". Only records are traversed; sequences,
// sets, maps, and dates are leaves.

// GetPath retrieves the value at a dot-separated path in a nested record.
func GetPath(rec map[string]any, path string) (any, bool) {
	if rec == nil {
		return nil, false
	}

	current := any(rec)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		val, exists := m[part]
		if !exists {
			return nil, false
		}
		current = val
	}
	return current, true
}

// SetPath sets the value at a dot-separated path, creating intermediate
// records as needed. A non-record intermediate is replaced by a fresh
// record.
func SetPath(rec map[string]any, path string, value any) {
	if rec == nil {
		return
	}

	parts := strings.Split(path, ".")
	current := rec
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// DeletePath removes the value at a dot-separated path.
// Returns true if a value was found and deleted.
func DeletePath(rec map[string]any, path string) bool {
	if rec == nil {
		return false
	}

	parts := strings.Split(path, ".")
	current := rec
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return false
		}
		current = next
	}

	key := parts[len(parts)-1]
	if _, exists := current[key]; exists {
		delete(current, key)
		return true
	}
	return false
}

// Flatten converts a nested record into a single-level record with
// dot-separated keys. Non-record values, including empty collections,
// are leaves.
func Flatten(rec map[string]any) map[string]any {
	result := make(map[string]any)
	flattenInto(rec, "", result)
	return result
}

func flattenInto(rec map[string]any, prefix string, result map[string]any) {
	for key, val := range rec {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := val.(map[string]any); ok && nested != nil {
			flattenInto(nested, fullKey, result)
		} else {
			result[fullKey] = val
		}
	}
}

// Unflatten converts a record with dot-separated keys back into a
// nested record.
func Unflatten(flat map[string]any) map[string]any {
	result := make(map[string]any)
	for path, val := range flat {
		SetPath(result, path, val)
	}
	return result
}

// Diff returns the dot-separated paths that differ between two nested
// records, using deep equality for leaf comparison.
func Diff(old, new map[string]any) (added, modified, removed []string) {
	oldFlat := Flatten(old)
	newFlat := Flatten(new)

	for path, newVal := range newFlat {
		if oldVal, exists := oldFlat[path]; exists {
			if !Equal(oldVal, newVal) {
				modified = append(modified, path)
			}
		} else {
			added = append(added, path)
		}
	}
	for path := range oldFlat {
		if _, exists := newFlat[path]; !exists {
			removed = append(removed, path)
		}
	}
	return added, modified, removed
}
