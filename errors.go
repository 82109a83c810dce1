package deepmerge

import "errors"

// Errors returned by Stack operations. The merge engine itself raises no
// errors; only the layered-configuration surface does.
var (
	// ErrLayerNotFound indicates the named layer doesn't exist.
	ErrLayerNotFound = errors.New("layer not found")

	// ErrReadOnlyLayer indicates modification was attempted on a
	// read-only layer.
	ErrReadOnlyLayer = errors.New("layer is read-only")
)
