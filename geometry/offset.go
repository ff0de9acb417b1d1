package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// RoomOffset nudges a resolved placement away from its anchor. A relative
// offset is a single distance applied inward, along the placement's own
// normal; an absolute offset is an explicit (dx,dy) pair applied regardless
// of placement.
type RoomOffset struct {
	DX, DY   int
	Relative bool
}

// ZeroOffset applies no adjustment.
var ZeroOffset = RoomOffset{}

// IsZero reports whether the offset has no effect.
func (o RoomOffset) IsZero() bool {
	return o.DX == 0 && o.DY == 0
}

// ParseOffset parses "N" (relative) or "DX,DY" (absolute) per spec.md §4.1.
func ParseOffset(text string) (RoomOffset, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ZeroOffset, nil
	}
	if !strings.Contains(text, ",") {
		v, err := strconv.Atoi(text)
		if err != nil {
			return RoomOffset{}, fmt.Errorf("offset %q: %w", text, ErrBadOffset)
		}
		return RoomOffset{DX: v, Relative: true}, nil
	}
	parts := strings.SplitN(text, ",", 2)
	dx, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	dy, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return RoomOffset{}, fmt.Errorf("offset %q: %w", text, ErrBadOffset)
	}
	return RoomOffset{DX: dx, DY: dy, Relative: false}, nil
}

// Translate applies the offset to an anchor location already resolved for
// placement p. Relative offsets move inward along the placement's normal;
// absolute offsets add (DX,DY) directly. Random placements ignore the
// offset entirely, matching the anchor being redrawn on every attempt.
func (o RoomOffset) Translate(loc RoomLocation, p Placement) RoomLocation {
	if o.IsZero() || p == Random {
		return loc
	}
	if !o.Relative {
		return loc.Translate(o.DX, o.DY)
	}
	nx, ny := p.DirectionNormals()
	return loc.Translate(-nx*o.DX, -ny*o.DX)
}
