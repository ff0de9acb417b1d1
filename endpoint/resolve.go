package endpoint

import (
	"fmt"
	"math/rand"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/placement"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

// Declaration is one endpoint as named in an ENDSPEC (spec.md §6):
// placement[/offset[/x]], where a trailing "x" marks it a dead end.
type Declaration struct {
	Placement geometry.Placement
	Offset    geometry.RoomOffset
	DeadEnd   bool
}

// Endpoint is a declaration resolved to a concrete room and, where the
// placement lands on the grid's outer edge, an exterior opening.
type Endpoint struct {
	Declaration Declaration
	Loc         geometry.RoomLocation
	Room        *room.Room
	Side        geometry.Direction
	HasOpening  bool
	Trapped     bool
}

// defaultDeclarations is used when a run declares no endpoints at all: a
// west/east pair, each anchored at the grid's mid-height row by ordinary
// Left/Right placement resolution.
func defaultDeclarations() []Declaration {
	return []Declaration{
		{Placement: geometry.Left},
		{Placement: geometry.Right},
	}
}

// ResolveAll resolves every declared endpoint against g, in declaration
// order. An empty decls resolves the default west/east pair.
//
// Collisions (two endpoints landing on the same room) and trapped
// endpoints (a room with no non-Blank interior neighbor) are treated as
// warnings when ignoreErrors is true, and as a hard error otherwise,
// mirroring the reference generator's ignore_errors switch.
func ResolveAll(g *room.Grid, decls []Declaration, gridWidth, gridHeight int, rng *rand.Rand, ignoreErrors bool) ([]Endpoint, []error, error) {
	if len(decls) == 0 {
		decls = defaultDeclarations()
	}

	var out []Endpoint
	var warnings []error
	used := make(map[*room.Room]bool, len(decls))

	for i, decl := range decls {
		rect, err := placement.Resolve(decl.Placement, geometry.SizeSingle, decl.Offset, gridWidth, gridHeight, rng,
			func(r geometry.Rect) bool {
				rm := g.RoomAt(geometry.RoomLocation{X: r.X, Y: r.Y})
				return rm != nil && !used[rm]
			})
		if err != nil {
			return nil, warnings, fmt.Errorf("endpoint: declaration %d: %w", i, err)
		}
		if !rect.FitsWithin(gridWidth, gridHeight) {
			return nil, warnings, fmt.Errorf("endpoint: declaration %d at %+v: %w", i, rect, placement.ErrUnplaceable)
		}

		loc := geometry.RoomLocation{X: rect.X, Y: rect.Y}
		r := g.RoomAt(loc)
		if r == nil {
			return nil, warnings, fmt.Errorf("endpoint: declaration %d at %+v: %w", i, loc, room.ErrOutOfBounds)
		}

		if used[r] {
			collision := fmt.Errorf("endpoint: declaration %d at %+v: %w", i, loc, ErrEndpointCollision)
			if !ignoreErrors {
				return nil, warnings, collision
			}
			warnings = append(warnings, collision)
			continue
		}

		if r.Type() == room.Blank {
			if err := g.Unblank(loc); err != nil {
				return nil, warnings, fmt.Errorf("endpoint: declaration %d: %w", i, err)
			}
		}
		if err := g.MarkEndpoint(loc); err != nil {
			return nil, warnings, fmt.Errorf("endpoint: declaration %d: %w", i, err)
		}

		ep := Endpoint{Declaration: decl, Loc: loc, Room: r}

		if dir, ok := openingDirection(decl); ok {
			if _, hasNeighbor := g.Neighbor(loc, dir); !hasNeighbor {
				w := room.Wall{Loc: loc, Side: dir}
				if err := g.CarveForce(w); err != nil {
					return nil, warnings, fmt.Errorf("endpoint: declaration %d: %w", i, err)
				}
				ep.Side = dir
				ep.HasOpening = true
			}
		}

		if isSurroundedByBlanks(g, loc) {
			ep.Trapped = true
			trapped := fmt.Errorf("endpoint: declaration %d at %+v: %w", i, loc, ErrEndpointTrapped)
			if !ignoreErrors {
				return nil, warnings, trapped
			}
			warnings = append(warnings, trapped)
		}

		used[r] = true
		out = append(out, ep)
	}

	return out, warnings, nil
}

// openingDirection resolves the exterior side a declaration's opening
// should attempt, per spec.md §4.6. Perimeter and corner placements use
// their fixed geometry.Placement.ExteriorDirection(). Center picks the
// direction of the offset's smaller-magnitude axis (a relative offset is
// already a no-op at Center, so only an absolute offset can steer this);
// ties, including a zero offset, favor North, then West. Random placements
// have no exterior side.
func openingDirection(decl Declaration) (geometry.Direction, bool) {
	if dir, ok := decl.Placement.ExteriorDirection(); ok {
		return dir, true
	}
	if decl.Placement != geometry.Center {
		return geometry.North, false
	}
	dx, dy := decl.Offset.DX, decl.Offset.DY
	ax, ay := abs(dx), abs(dy)
	if ay <= ax {
		if dy > 0 {
			return geometry.South, true
		}
		return geometry.North, true
	}
	if dx > 0 {
		return geometry.East, true
	}
	return geometry.West, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// isSurroundedByBlanks reports whether every interior neighbor of loc (a
// neighbor cell that exists within the grid) is a Blank room, matching the
// reference generator's is_surrounded_by_blanks check. A cell with no
// interior neighbors at all is not considered trapped by this rule.
func isSurroundedByBlanks(g *room.Grid, loc geometry.RoomLocation) bool {
	any := false
	for _, d := range geometry.Directions {
		n, ok := g.Neighbor(loc, d)
		if !ok {
			continue
		}
		any = true
		if g.RoomAt(n).Type() != room.Blank {
			return false
		}
	}
	return any
}
