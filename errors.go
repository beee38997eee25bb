package entropy

import (
	"github.com/simonhull/entropy/internal/types"
)

// ReadError is an alias to types.ReadError.
// Re-exporting from internal/types to maintain public API.
type ReadError = types.ReadError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedMeasureError is an alias to types.UnsupportedMeasureError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedMeasureError = types.UnsupportedMeasureError
