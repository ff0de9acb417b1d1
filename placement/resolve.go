package placement

import (
	"math/rand"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
)

// RandomRetryBudget is the number of candidate rectangles Resolve tries for
// a Random placement before giving up with ErrConflictAfterRetries. It
// matches the redraw budget the reference implementation uses when looking
// for a usable spot for a randomly placed path end.
const RandomRetryBudget = 100

// Resolve computes the absolute rectangle a placement, size, and offset
// describe within a grid of the given dimensions, per spec.md §4.3.
//
// A size wider or taller than the grid is rejected with ErrUnplaceable
// for every placement, before anything else is resolved.
//
// For every placement other than Random the result is deterministic: an
// anchor cell on the corresponding edge, midpoint, or corner of the grid,
// corrected so a size larger than 1x1 stays aligned with that edge rather
// than overhanging it, then shifted by offset. The caller is responsible
// for clipping or rejecting a rectangle that does not fit, per its own
// modifier's policy (spec.md §4.5) — Resolve does not clip.
//
// For Random, accept is consulted for each candidate rectangle (which
// always fits within the grid by construction); the first accepted
// candidate is returned. accept may be nil, in which case the first
// candidate is used. If no candidate is accepted within RandomRetryBudget
// attempts, Resolve returns ErrConflictAfterRetries. Offsets have no effect
// on Random placements, matching the reference implementation.
func Resolve(
	p geometry.Placement,
	size geometry.RoomSize,
	offset geometry.RoomOffset,
	gridWidth, gridHeight int,
	rng *rand.Rand,
	accept func(geometry.Rect) bool,
) (geometry.Rect, error) {
	if size.Width > gridWidth || size.Height > gridHeight {
		return geometry.Rect{}, ErrUnplaceable
	}

	if p != geometry.Random {
		anchor := p.AnchorCell(gridWidth, gridHeight)
		loc := anchor.Add(p.SizeOffset(size))
		loc = offset.Translate(loc, p)
		return geometry.Rect{X: loc.X, Y: loc.Y, Width: size.Width, Height: size.Height}, nil
	}

	xRange := gridWidth - size.Width + 1
	yRange := gridHeight - size.Height + 1
	for attempt := 0; attempt < RandomRetryBudget; attempt++ {
		rect := geometry.Rect{
			X:      rng.Intn(xRange),
			Y:      rng.Intn(yRange),
			Width:  size.Width,
			Height: size.Height,
		}
		if accept == nil || accept(rect) {
			return rect, nil
		}
	}
	return geometry.Rect{}, ErrConflictAfterRetries
}
