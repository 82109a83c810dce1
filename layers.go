package deepmerge

import (
	"fmt"
	"sort"
	"sync"
)

// Layer is one named configuration source in a Stack.
type Layer struct {
	// Name identifies the layer (e.g. "defaults", "user", "session").
	Name string

	// Priority determines merge order; higher overrides lower.
	Priority int

	// Data holds the layer's values as a nested record.
	Data map[string]any

	// ReadOnly prevents modifications through the Stack.
	ReadOnly bool
}

// Stack folds named, priority-ordered configuration layers through the
// merge engine. All layers share one Options value, fixed at creation.
// Safe for concurrent use.
type Stack struct {
	mu     sync.RWMutex
	opts   Options
	layers []*Layer       // sorted by priority, ascending
	merged map[string]any // cached merged result
	dirty  bool
}

// NewStack creates an empty stack that merges with the given options.
func NewStack(opts Options) *Stack {
	return &Stack{opts: opts, dirty: true}
}

// Add inserts a layer. Layers are kept sorted by priority.
func (s *Stack) Add(layer *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layers = append(s.layers, layer)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Priority < s.layers[j].Priority
	})
	s.dirty = true
}

// Remove removes a layer by name. Returns true if it was found.
func (s *Stack) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, layer := range s.layers {
		if layer.Name == name {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			s.dirty = true
			return true
		}
	}
	return false
}

// Layer returns a layer by name, or nil if absent.
func (s *Stack) Layer(name string) *Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(name)
}

// Len returns the number of layers.
func (s *Stack) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.layers)
}

// Merged folds all layers, lowest priority first, into a single record.
// The result is cached until a layer changes; callers receive a deep
// copy and may mutate it freely.
func (s *Stack) Merged() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecord(s.mergedLocked())
}

// Lookup returns the effective value at a dot-separated path, searching
// layers from highest priority down, along with the providing layer's
// name.
func (s *Stack) Lookup(path string) (any, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if val, ok := GetPath(layer.Data, path); ok {
			return val, layer.Name, true
		}
	}
	return nil, "", false
}

// Get returns the merged value at a dot-separated path.
func (s *Stack) Get(path string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GetPath(s.mergedLocked(), path)
}

// Set sets a value at a dot-separated path in a named layer.
func (s *Stack) Set(name, path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer := s.find(name)
	if layer == nil {
		return fmt.Errorf("%w: %s", ErrLayerNotFound, name)
	}
	if layer.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnlyLayer, name)
	}
	if layer.Data == nil {
		layer.Data = make(map[string]any)
	}
	SetPath(layer.Data, path, value)
	s.dirty = true
	return nil
}

// Delete removes a value at a dot-separated path from a named layer.
func (s *Stack) Delete(name, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer := s.find(name)
	if layer == nil {
		return fmt.Errorf("%w: %s", ErrLayerNotFound, name)
	}
	if layer.ReadOnly {
		return fmt.Errorf("%w: %s", ErrReadOnlyLayer, name)
	}
	if DeletePath(layer.Data, path) {
		s.dirty = true
	}
	return nil
}

// Invalidate marks the merged cache dirty. Call after mutating a layer's
// Data directly.
func (s *Stack) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

// mergedLocked refreshes and returns the cached merge. Caller holds mu.
func (s *Stack) mergedLocked() map[string]any {
	if s.dirty || s.merged == nil {
		sources := make([]any, len(s.layers))
		for i, layer := range s.layers {
			sources[i] = layer.Data
		}
		result, _ := WithOptions(s.opts, sources...).(map[string]any)
		s.merged = result
		s.dirty = false
	}
	return s.merged
}

func (s *Stack) find(name string) *Layer {
	for _, layer := range s.layers {
		if layer.Name == name {
			return layer
		}
	}
	return nil
}
