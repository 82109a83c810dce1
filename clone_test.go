package deepmerge

import (
	"testing"
	"time"
)

func TestClone_DetachesNestedStructures(t *testing.T) {
	original := map[string]any{
		"rec": map[string]any{"a": 1},
		"seq": []any{1, map[string]any{"b": 2}},
		"set": NewSet("x"),
		"map": NewMapOf(MapEntry{"k", []any{1}}),
		"d":   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	cloned := Clone(original).(map[string]any)
	if !Equal(original, cloned) {
		t.Fatal("clone should equal the original")
	}

	cloned["rec"].(map[string]any)["a"] = 99
	cloned["seq"].([]any)[1].(map[string]any)["b"] = 99
	cloned["set"].(*Set).Add("y")
	cloned["map"].(*Map).Set("k2", 2)

	if original["rec"].(map[string]any)["a"] != 1 {
		t.Error("nested record should be detached")
	}
	if original["seq"].([]any)[1].(map[string]any)["b"] != 2 {
		t.Error("record inside sequence should be detached")
	}
	if original["set"].(*Set).Has("y") {
		t.Error("set should be detached")
	}
	if _, ok := original["map"].(*Map).Get("k2"); ok {
		t.Error("ordered map should be detached")
	}
}

func TestClone_NilLeaves(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
	got := Clone(map[string]any(nil))
	if rec, ok := got.(map[string]any); !ok || rec != nil {
		t.Errorf("Clone(nil record) = %v, want nil record", got)
	}
}

func TestClone_PrimitivesPassThrough(t *testing.T) {
	for _, v := range []any{42, "s", true, 2.5} {
		if got := Clone(v); got != v {
			t.Errorf("Clone(%v) = %v", v, got)
		}
	}
}
