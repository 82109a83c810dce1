package deepmerge

import "reflect"

// tracker maps an already-visited source record's identity to the
// destination record being built for it. One tracker is created per
// top-level call and discarded with it. A source identity is registered
// at most once, before its fields are processed, so a back-edge resolves
// to the in-progress destination instead of recursing forever.
//
// Identity is the map header pointer: the tracker catches the exact same
// record appearing twice, not distinct-but-equal records.
type tracker map[uintptr]map[string]any

// recordID returns the identity of a record. Only meaningful for non-nil
// maps; nil maps are skipped by the engine before identity is taken.
func recordID(rec map[string]any) uintptr {
	return reflect.ValueOf(rec).Pointer()
}

// visited returns the destination registered for a source record, if any.
func (t tracker) visited(rec map[string]any) (map[string]any, bool) {
	dst, ok := t[recordID(rec)]
	return dst, ok
}

// register records the in-progress destination for a source record.
func (t tracker) register(rec, dst map[string]any) {
	t[recordID(rec)] = dst
}
