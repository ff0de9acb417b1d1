package layout

import (
	"fmt"
	"strings"
)

// FillMode selects how the resolved room grid's per-cell millimetre
// geometry fills the requested canvas. It never affects (nx,ny); it only
// affects the rectangles a renderer would draw, per spec.md §3.
type FillMode int

const (
	// StretchEdge sizes every cell to the canvas width and height divided
	// by (nx,ny), so the grid touches all four edges of the canvas. The
	// remainder CellRect folds into the first row and column is what that
	// division leaves over, which is zero up to floating-point rounding:
	// edge cells come out the same size as interior cells, and the
	// configured side length is not kept.
	StretchEdge FillMode = iota
	// Stretch sizes every cell the same way as StretchEdge (canvas divided
	// by (nx,ny) on each axis), so the block fills the canvas with no
	// margin and the configured side length is not kept.
	Stretch
	// SquareTopLeft forces every cell to a single square side length
	// (the smaller of the two axis-derived lengths) and anchors the
	// resulting block at the canvas's top-left corner.
	SquareTopLeft
	// SquareCenter is SquareTopLeft, centered within the canvas.
	SquareCenter
	// FixedTopLeft uses the literal configured side length for every
	// cell, ignoring the canvas size entirely beyond anchoring at the
	// top-left corner.
	FixedTopLeft
	// FixedCenter is FixedTopLeft, centered within the canvas.
	FixedCenter
)

// String renders the fill mode's long name.
func (f FillMode) String() string {
	switch f {
	case StretchEdge:
		return "stretch_edge"
	case Stretch:
		return "stretch"
	case SquareTopLeft:
		return "square_top_left"
	case SquareCenter:
		return "square_center"
	case FixedTopLeft:
		return "fixed_top_left"
	case FixedCenter:
		return "fixed_center"
	default:
		return "unknown"
	}
}

var fillModeAliases = map[string]FillMode{
	"stretch_edge": StretchEdge, "se": StretchEdge,
	"stretch": Stretch, "s": Stretch,
	"square_top_left": SquareTopLeft, "qt": SquareTopLeft,
	"square_center": SquareCenter, "q": SquareCenter,
	"fixed_top_left": FixedTopLeft, "ft": FixedTopLeft,
	"fixed_center": FixedCenter, "f": FixedCenter,
}

// ParseFillMode parses a fill-mode name or its short alias per spec.md §6.
func ParseFillMode(text string) (FillMode, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return StretchEdge, nil
	}
	if m, ok := fillModeAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("fill mode %q: %w", text, ErrBadFillMode)
}

// isSquare reports whether the mode forces a single axis-independent side
// length rather than allowing the x and y cell sizes to differ.
func (f FillMode) isSquare() bool {
	switch f {
	case SquareTopLeft, SquareCenter, FixedTopLeft, FixedCenter:
		return true
	default:
		return false
	}
}

// isFixed reports whether the mode uses the literal configured side length
// instead of one derived from the canvas size.
func (f FillMode) isFixed() bool {
	return f == FixedTopLeft || f == FixedCenter
}

// isCentered reports whether the mode centers its block within the canvas
// instead of anchoring it at the top-left corner.
func (f FillMode) isCentered() bool {
	switch f {
	case Stretch, SquareCenter, FixedCenter:
		return true
	default:
		return false
	}
}

// isEdgeStretched reports whether the mode absorbs rounding remainder in
// the first row and column instead of leaving a margin.
func (f FillMode) isEdgeStretched() bool {
	return f == StretchEdge
}
