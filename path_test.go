package deepmerge

import (
	"reflect"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetPath(t *testing.T) {
	rec := map[string]any{
		"editor": map[string]any{
			"tabSize": 4,
			"font": map[string]any{
				"size": 14,
			},
		},
		"theme": "dark",
		"list":  []any{1, 2},
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"top level", "theme", "dark", true},
		{"nested", "editor.tabSize", 4, true},
		{"deeply nested", "editor.font.size", 14, true},
		{"missing key", "editor.missing", nil, false},
		{"missing root", "nothing.here", nil, false},
		{"through a leaf", "theme.deeper", nil, false},
		{"sequence is a leaf", "list.0", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetPath(rec, tt.path)
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetPath(%q) = %v, %v; want %v, %v", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := GetPath(nil, "a"); ok {
		t.Error("GetPath on nil record should report not found")
	}
}

func TestSetPath(t *testing.T) {
	rec := map[string]any{}
	SetPath(rec, "editor.tabSize", 2)
	SetPath(rec, "editor.wrap", true)
	SetPath(rec, "theme", "light")

	want := map[string]any{
		"editor": map[string]any{"tabSize": 2, "wrap": true},
		"theme":  "light",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}
}

func TestSetPath_ReplacesNonRecordIntermediate(t *testing.T) {
	rec := map[string]any{"a": 1}
	SetPath(rec, "a.b", 2)
	want := map[string]any{"a": map[string]any{"b": 2}}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}
}

func TestDeletePath(t *testing.T) {
	rec := map[string]any{
		"editor": map[string]any{"tabSize": 4, "wrap": true},
	}

	if !DeletePath(rec, "editor.tabSize") {
		t.Error("existing path should be deleted")
	}
	if _, ok := GetPath(rec, "editor.tabSize"); ok {
		t.Error("deleted path should be gone")
	}
	if DeletePath(rec, "editor.tabSize") {
		t.Error("second delete should report false")
	}
	if DeletePath(rec, "missing.path") {
		t.Error("missing path should report false")
	}
}

func TestFlattenUnflatten(t *testing.T) {
	nested := map[string]any{
		"editor": map[string]any{
			"tabSize": 4,
			"font":    map[string]any{"size": 14},
		},
		"theme": "dark",
	}

	flat := Flatten(nested)
	wantFlat := map[string]any{
		"editor.tabSize":   4,
		"editor.font.size": 14,
		"theme":            "dark",
	}
	if diff := cmp.Diff(wantFlat, flat); diff != "" {
		t.Errorf("Flatten (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(nested, Unflatten(flat)); diff != "" {
		t.Errorf("Unflatten round trip (-want +got):\n%s", diff)
	}
}

func TestFlatten_CollectionsAreLeaves(t *testing.T) {
	rec := map[string]any{
		"arr": []any{1, 2},
		"set": NewSet("a"),
	}
	flat := Flatten(rec)
	if _, ok := flat["arr"]; !ok {
		t.Error("sequence should flatten as a leaf")
	}
	if _, ok := flat["set"]; !ok {
		t.Error("set should flatten as a leaf")
	}
}

func TestDiff(t *testing.T) {
	old := map[string]any{
		"keep":   1,
		"change": "before",
		"drop":   true,
		"nested": map[string]any{"same": 1, "edit": 2},
	}
	new := map[string]any{
		"keep":   1,
		"change": "after",
		"extra":  "new",
		"nested": map[string]any{"same": 1, "edit": 3},
	}

	added, modified, removed := Diff(old, new)
	sort.Strings(added)
	sort.Strings(modified)
	sort.Strings(removed)

	if want := []string{"extra"}; !reflect.DeepEqual(added, want) {
		t.Errorf("added = %v, want %v", added, want)
	}
	if want := []string{"change", "nested.edit"}; !reflect.DeepEqual(modified, want) {
		t.Errorf("modified = %v, want %v", modified, want)
	}
	if want := []string{"drop"}; !reflect.DeepEqual(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}
}

func TestDiff_DeepEqualityForLeaves(t *testing.T) {
	old := map[string]any{"s": NewSet("a", "b")}
	new := map[string]any{"s": NewSet("b", "a")}

	added, modified, removed := Diff(old, new)
	if len(added)+len(modified)+len(removed) != 0 {
		t.Errorf("order-insensitive set should not diff: %v %v %v", added, modified, removed)
	}
}
