package modifier

import (
	"fmt"
	"strings"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

// ClosingType selects which walls of a rectangle a Closing modifier
// targets, per spec.md §4.5.
type ClosingType int

const (
	CornerPaths ClosingType = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
	DirectionWest
	DirectionNorth
	DirectionEast
	DirectionSouth
	DirectionHorizontal
	DirectionVertical
	MiddlePaths
	MiddleWest
	MiddleNorth
	MiddleEast
	MiddleSouth
)

var closingTypeNames = map[ClosingType]string{
	CornerPaths:         "corner_paths",
	CornerTopLeft:       "corner_top_left",
	CornerTopRight:      "corner_top_right",
	CornerBottomRight:   "corner_bottom_right",
	CornerBottomLeft:    "corner_bottom_left",
	DirectionWest:       "direction_west",
	DirectionNorth:      "direction_north",
	DirectionEast:       "direction_east",
	DirectionSouth:      "direction_south",
	DirectionHorizontal: "direction_horizontal",
	DirectionVertical:   "direction_vertical",
	MiddlePaths:         "middle_paths",
	MiddleWest:          "middle_west",
	MiddleNorth:         "middle_north",
	MiddleEast:          "middle_east",
	MiddleSouth:         "middle_south",
}

var closingTypeAliases = map[string]ClosingType{
	"c": CornerPaths, "cnw": CornerTopLeft, "cne": CornerTopRight,
	"cse": CornerBottomRight, "csw": CornerBottomLeft,
	"dw": DirectionWest, "dn": DirectionNorth, "de": DirectionEast, "ds": DirectionSouth,
	"dh": DirectionHorizontal, "dv": DirectionVertical,
	"m": MiddlePaths, "mw": MiddleWest, "mn": MiddleNorth, "me": MiddleEast, "ms": MiddleSouth,
}

// String renders the closing type's canonical long name.
func (c ClosingType) String() string {
	if name, ok := closingTypeNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseClosingType parses a closing type by its long name or short alias
// (spec.md §6), e.g. "direction_vertical" or "dv".
func ParseClosingType(text string) (ClosingType, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if t, ok := closingTypeAliases[key]; ok {
		return t, nil
	}
	for t, name := range closingTypeNames {
		if name == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("closing type %q: %w", text, ErrBadClosing)
}

func middleIndex(dim int) int {
	return (dim - 1) / 2
}

// candidateWalls enumerates the walls a closing type selects within rect,
// before the invert transform is applied. CornerPaths, the four individual
// corner types, MiddlePaths, and the four individual middle types name
// walls that lead outward off the rectangle; the direction-based types name
// every wall of the matching orientation belonging to a cell in the
// rectangle, whether that wall lies on the rectangle's own boundary or
// between two cells both inside it (spec.md §4.5's "DirectionVertical =
// all vertical inter-cell walls within the rectangle", exercised by
// scenario S5).
func (c ClosingType) candidateWalls(rect geometry.Rect) []room.Wall {
	switch c {
	case CornerPaths:
		return []room.Wall{
			{Loc: geometry.RoomLocation{X: rect.X, Y: rect.Y}, Side: geometry.North},
			{Loc: geometry.RoomLocation{X: rect.Right() - 1, Y: rect.Y}, Side: geometry.East},
			{Loc: geometry.RoomLocation{X: rect.Right() - 1, Y: rect.Bottom() - 1}, Side: geometry.South},
			{Loc: geometry.RoomLocation{X: rect.X, Y: rect.Bottom() - 1}, Side: geometry.West},
		}
	case CornerTopLeft:
		loc := geometry.RoomLocation{X: rect.X, Y: rect.Y}
		return []room.Wall{{Loc: loc, Side: geometry.North}, {Loc: loc, Side: geometry.West}}
	case CornerTopRight:
		loc := geometry.RoomLocation{X: rect.Right() - 1, Y: rect.Y}
		return []room.Wall{{Loc: loc, Side: geometry.North}, {Loc: loc, Side: geometry.East}}
	case CornerBottomRight:
		loc := geometry.RoomLocation{X: rect.Right() - 1, Y: rect.Bottom() - 1}
		return []room.Wall{{Loc: loc, Side: geometry.South}, {Loc: loc, Side: geometry.East}}
	case CornerBottomLeft:
		loc := geometry.RoomLocation{X: rect.X, Y: rect.Bottom() - 1}
		return []room.Wall{{Loc: loc, Side: geometry.South}, {Loc: loc, Side: geometry.West}}
	case DirectionWest, DirectionEast, DirectionNorth, DirectionSouth:
		dir := map[ClosingType]geometry.Direction{
			DirectionWest: geometry.West, DirectionEast: geometry.East,
			DirectionNorth: geometry.North, DirectionSouth: geometry.South,
		}[c]
		var out []room.Wall
		for _, loc := range rect.Locations() {
			out = append(out, room.Wall{Loc: loc, Side: dir})
		}
		return out
	case DirectionHorizontal:
		var out []room.Wall
		for _, loc := range rect.Locations() {
			out = append(out, room.Wall{Loc: loc, Side: geometry.West}, room.Wall{Loc: loc, Side: geometry.East})
		}
		return out
	case DirectionVertical:
		var out []room.Wall
		for _, loc := range rect.Locations() {
			out = append(out, room.Wall{Loc: loc, Side: geometry.North}, room.Wall{Loc: loc, Side: geometry.South})
		}
		return out
	case MiddlePaths:
		return []room.Wall{
			{Loc: geometry.RoomLocation{X: rect.X + middleIndex(rect.Width), Y: rect.Y}, Side: geometry.North},
			{Loc: geometry.RoomLocation{X: rect.Right() - 1, Y: rect.Y + middleIndex(rect.Height)}, Side: geometry.East},
			{Loc: geometry.RoomLocation{X: rect.X + middleIndex(rect.Width), Y: rect.Bottom() - 1}, Side: geometry.South},
			{Loc: geometry.RoomLocation{X: rect.X, Y: rect.Y + middleIndex(rect.Height)}, Side: geometry.West},
		}
	case MiddleNorth:
		return []room.Wall{{Loc: geometry.RoomLocation{X: rect.X + middleIndex(rect.Width), Y: rect.Y}, Side: geometry.North}}
	case MiddleEast:
		return []room.Wall{{Loc: geometry.RoomLocation{X: rect.Right() - 1, Y: rect.Y + middleIndex(rect.Height)}, Side: geometry.East}}
	case MiddleSouth:
		return []room.Wall{{Loc: geometry.RoomLocation{X: rect.X + middleIndex(rect.Width), Y: rect.Bottom() - 1}, Side: geometry.South}}
	case MiddleWest:
		return []room.Wall{{Loc: geometry.RoomLocation{X: rect.X, Y: rect.Y + middleIndex(rect.Height)}, Side: geometry.West}}
	default:
		return nil
	}
}

// Closing is a closing-type-plus-invert specification, per spec.md §4.5.
type Closing struct {
	Type    ClosingType
	Inverts bool
}

// selectedWalls returns the walls this closing selects within rect,
// accounting for Inverts: (all boundary walls of the rectangle) minus the
// candidates, when inverted.
func (c Closing) selectedWalls(rect geometry.Rect) []room.Wall {
	candidates := make(map[room.Wall]bool)
	for _, w := range c.Type.candidateWalls(rect) {
		candidates[w] = true
	}
	if !c.Inverts {
		out := make([]room.Wall, 0, len(candidates))
		for w := range candidates {
			out = append(out, w)
		}
		return out
	}
	var out []room.Wall
	for _, w := range boundaryWalls(rect) {
		if !candidates[w] {
			out = append(out, w)
		}
	}
	return out
}

// boundaryWalls lists every wall of the rectangle that leads outward off
// it, i.e. one wall per exit direction of every perimeter cell.
func boundaryWalls(rect geometry.Rect) []room.Wall {
	var out []room.Wall
	for _, loc := range rect.Locations() {
		if loc.Y == rect.Y {
			out = append(out, room.Wall{Loc: loc, Side: geometry.North})
		}
		if loc.Y == rect.Bottom()-1 {
			out = append(out, room.Wall{Loc: loc, Side: geometry.South})
		}
		if loc.X == rect.X {
			out = append(out, room.Wall{Loc: loc, Side: geometry.West})
		}
		if loc.X == rect.Right()-1 {
			out = append(out, room.Wall{Loc: loc, Side: geometry.East})
		}
	}
	return out
}
