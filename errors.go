package photoshop

import "errors"

// Sentinel errors returned by Grid construction and by transforms with
// caller-checkable preconditions. All of them indicate caller error rather
// than transient failure; none are worth retrying.
var (
	// ErrEmptyImage is returned when constructing a Grid from zero rows
	// or zero columns.
	ErrEmptyImage = errors.New("empty image")

	// ErrNonRectangular is returned when constructing a Grid from rows
	// of differing lengths.
	ErrNonRectangular = errors.New("rows do not form a rectangle")

	// ErrInvalidDimensions is returned when a requested grid size has a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrDimensionMismatch is returned by cross-image transforms when the
	// partner grid is smaller than the receiver.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidSpan is returned by Posterize for a non-positive span.
	ErrInvalidSpan = errors.New("span must be positive")
)
