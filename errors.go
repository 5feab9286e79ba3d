package focus

import "github.com/smpoulsen/focus/container"

// Adapter failure sentinels, re-exported so callers can errors.Is
// against them without importing the container package.
var (
	// ErrBadPath matches any failure caused by a missing key, index,
	// or variant tag.
	ErrBadPath = container.ErrBadPath

	// ErrUnsupportedShape matches any failure caused by a container
	// kind that does not support optic access.
	ErrUnsupportedShape = container.ErrUnsupportedShape
)
