package room

import "errors"

// Sentinel errors for room-grid operations.
var (
	// ErrInvalidMerge indicates a merge rectangle overlaps an existing
	// merge, a non-1x1 room, or lies outside the grid.
	ErrInvalidMerge = errors.New("room: invalid merge")
	// ErrWallNotOpen indicates an attempt to carve a wall that is not
	// currently open (already carved or closed).
	ErrWallNotOpen = errors.New("room: wall is not open")
	// ErrOutOfBounds indicates a location or rectangle lies outside the grid.
	ErrOutOfBounds = errors.New("room: location out of bounds")
)
