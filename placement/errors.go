package placement

import "errors"

// Sentinel errors for placement resolution.
var (
	// ErrUnplaceable indicates a rectangle does not fit within the target
	// grid: Resolve returns it for a size larger than the grid, and callers
	// wrap it when they reject a resolved rectangle they do not clip.
	ErrUnplaceable = errors.New("placement: rectangle does not fit in grid")
	// ErrConflictAfterRetries indicates a random placement could not find a
	// non-conflicting rectangle within its redraw budget.
	ErrConflictAfterRetries = errors.New("placement: no non-conflicting position found after retries")
)
