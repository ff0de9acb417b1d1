package modifier

import (
	"errors"

	"github.com/erbsland-dev/erbsland-maze-go/placement"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

// Sentinel errors for the modifier engine.
var (
	// ErrBadClosing indicates a closing-type name is not recognized, or a
	// closing was declared with a Random placement, which spec.md forbids.
	ErrBadClosing = errors.New("modifier: invalid closing")
	// ErrInvalidMerge indicates a merge modifier's rectangle could not be
	// merged; see room.ErrInvalidMerge for the underlying reason.
	ErrInvalidMerge = room.ErrInvalidMerge
	// ErrUnplaceable indicates a modifier's resolved rectangle does not fit
	// within the grid. It is placement.ErrUnplaceable, so errors.Is matches
	// whether placement.Resolve or the modifier itself rejected the rectangle.
	ErrUnplaceable = placement.ErrUnplaceable
)
