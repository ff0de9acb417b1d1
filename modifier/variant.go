package modifier

import (
	"fmt"
	"math/rand"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/placement"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

// Variant is one modifier instance: a tagged variant of Frame, Blank,
// Closing, or Merge, applied to a grid during the phase its Kind belongs
// to. Apply mutates the grid in place.
type Variant interface {
	// OrderKey gives the within-phase sort key spec.md §4.5 mandates
	// (center, then corners, then edges, then random).
	OrderKey() int
	// Apply performs the modifier's effect on the grid.
	Apply(g *room.Grid, gridWidth, gridHeight int, rng *rand.Rand) error
}

// Frame marks the outermost rows/columns named by Insets as Blank,
// expanding to the Blank phase per spec.md §4.5.
type Frame struct {
	Insets geometry.RoomInsets
}

// OrderKey reports Frame as running before any placement-anchored blank,
// since it describes the whole grid rather than one placement.
func (f Frame) OrderKey() int { return -1 }

// Apply marks the frame rectangles as Blank.
func (f Frame) Apply(g *room.Grid, gridWidth, gridHeight int, _ *rand.Rand) error {
	full := geometry.Rect{X: 0, Y: 0, Width: gridWidth, Height: gridHeight}
	if f.Insets.Top > 0 {
		if err := g.MarkBlank(geometry.Rect{X: 0, Y: 0, Width: gridWidth, Height: f.Insets.Top}); err != nil {
			return fmt.Errorf("modifier: frame: %w", err)
		}
	}
	if f.Insets.Bottom > 0 {
		if err := g.MarkBlank(geometry.Rect{X: 0, Y: full.Bottom() - f.Insets.Bottom, Width: gridWidth, Height: f.Insets.Bottom}); err != nil {
			return fmt.Errorf("modifier: frame: %w", err)
		}
	}
	if f.Insets.Left > 0 {
		if err := g.MarkBlank(geometry.Rect{X: 0, Y: 0, Width: f.Insets.Left, Height: gridHeight}); err != nil {
			return fmt.Errorf("modifier: frame: %w", err)
		}
	}
	if f.Insets.Right > 0 {
		if err := g.MarkBlank(geometry.Rect{X: full.Right() - f.Insets.Right, Y: 0, Width: f.Insets.Right, Height: gridHeight}); err != nil {
			return fmt.Errorf("modifier: frame: %w", err)
		}
	}
	return nil
}

// placed is the common shape shared by Blank, ClosingMod, and MergeMod: a
// symbolic placement resolved to a rectangle before being applied.
type placed struct {
	Placement geometry.Placement
	Size      geometry.RoomSize
	Offset    geometry.RoomOffset
}

func (p placed) OrderKey() int { return p.Placement.OrderKey() }

func (p placed) resolve(gridWidth, gridHeight int, rng *rand.Rand) (geometry.Rect, error) {
	return placement.Resolve(p.Placement, p.Size, p.Offset, gridWidth, gridHeight, rng, nil)
}

// Blank marks every cell of the resolved rectangle Blank. Overlapping an
// already-blank cell is a no-op, per spec.md §4.5.
type Blank struct {
	placed
}

// NewBlank creates a Blank modifier targeting the given placement.
func NewBlank(p geometry.Placement, size geometry.RoomSize, offset geometry.RoomOffset) Blank {
	return Blank{placed{Placement: p, Size: size, Offset: offset}}
}

// Apply resolves the target rectangle, clips it to the grid, and marks it
// Blank.
func (b Blank) Apply(g *room.Grid, gridWidth, gridHeight int, rng *rand.Rand) error {
	rect, err := b.resolve(gridWidth, gridHeight, rng)
	if err != nil {
		return fmt.Errorf("modifier: blank: %w", err)
	}
	clipped, ok := rect.Clip(gridWidth, gridHeight)
	if !ok {
		return fmt.Errorf("modifier: blank at %+v: %w", rect, ErrUnplaceable)
	}
	if err := g.MarkBlank(clipped); err != nil {
		return fmt.Errorf("modifier: blank: %w", err)
	}
	return nil
}

// ClosingMod applies a Closing to the walls of a resolved rectangle.
// Closings must not use a Random placement.
type ClosingMod struct {
	placed
	Closing Closing
}

// NewClosing creates a Closing modifier targeting the given placement.
// It returns ErrBadClosing if p is Random.
func NewClosing(c Closing, p geometry.Placement, size geometry.RoomSize, offset geometry.RoomOffset) (ClosingMod, error) {
	if p == geometry.Random {
		return ClosingMod{}, fmt.Errorf("modifier: closing at random placement: %w", ErrBadClosing)
	}
	return ClosingMod{placed: placed{Placement: p, Size: size, Offset: offset}, Closing: c}, nil
}

// Apply resolves the target rectangle, rejecting it if it does not fit,
// then closes every wall the Closing selects.
func (c ClosingMod) Apply(g *room.Grid, gridWidth, gridHeight int, rng *rand.Rand) error {
	rect, err := c.resolve(gridWidth, gridHeight, rng)
	if err != nil {
		return fmt.Errorf("modifier: closing: %w", err)
	}
	if !rect.FitsWithin(gridWidth, gridHeight) {
		return fmt.Errorf("modifier: closing at %+v: %w", rect, ErrUnplaceable)
	}
	for _, w := range c.Closing.selectedWalls(rect) {
		if err := g.Close(w); err != nil {
			return fmt.Errorf("modifier: closing: %w", err)
		}
	}
	return nil
}

// MergeMod replaces the 1x1 Normal rooms in a resolved rectangle with one
// merged Room, per spec.md §4.2.
type MergeMod struct {
	placed
}

// NewMerge creates a Merge modifier targeting the given placement.
func NewMerge(p geometry.Placement, size geometry.RoomSize, offset geometry.RoomOffset) MergeMod {
	return MergeMod{placed{Placement: p, Size: size, Offset: offset}}
}

// Apply resolves the target rectangle, rejecting it if it does not fit,
// then merges it. A Random placement redraws any candidate that covers a
// cell which is not an unmerged Normal room, up to
// placement.RandomRetryBudget times, and fails with
// placement.ErrConflictAfterRetries if none is left.
func (m MergeMod) Apply(g *room.Grid, gridWidth, gridHeight int, rng *rand.Rand) error {
	accept := func(r geometry.Rect) bool {
		for _, loc := range r.Locations() {
			if cell := g.RoomAt(loc); cell.Type() != room.Normal || cell.IsMerged() {
				return false
			}
		}
		return true
	}
	rect, err := placement.Resolve(m.Placement, m.Size, m.Offset, gridWidth, gridHeight, rng, accept)
	if err != nil {
		return fmt.Errorf("modifier: merge: %w", err)
	}
	if !rect.FitsWithin(gridWidth, gridHeight) {
		return fmt.Errorf("modifier: merge at %+v: %w", rect, ErrUnplaceable)
	}
	if _, err := g.Merge(rect); err != nil {
		return fmt.Errorf("modifier: merge: %w", err)
	}
	return nil
}
