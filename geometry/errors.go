package geometry

import "errors"

// Sentinel errors for geometry parsing and validation.
var (
	// ErrBadSize indicates a room-size specification could not be parsed.
	ErrBadSize = errors.New("geometry: invalid room size")
	// ErrBadOffset indicates a room-offset specification could not be parsed.
	ErrBadOffset = errors.New("geometry: invalid room offset")
	// ErrBadInsets indicates a room-insets specification could not be parsed.
	ErrBadInsets = errors.New("geometry: invalid room insets")
	// ErrBadPlacement indicates a placement name is not recognized.
	ErrBadPlacement = errors.New("geometry: invalid placement")
	// ErrBadDimension indicates a non-positive dimension where a positive one is required.
	ErrBadDimension = errors.New("geometry: dimension must be positive")
)
