package pulse

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrSurfaceLost is returned by Context.Render if the surface did not
	// provide a texture. Configuring the surface again recovers from it.
	ErrSurfaceLost = errors.New("surface lost")

	// ErrSurfaceOutOfMemory is not recoverable. Context does not produce it,
	// the native bindings only report validation errors while acquiring a
	// surface texture. Other Renderer implementations may.
	ErrSurfaceOutOfMemory = errors.New("out of memory")
)
