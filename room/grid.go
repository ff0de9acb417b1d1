package room

import (
	"fmt"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
)

// Grid is the nx-by-ny room-and-wall model described in spec.md §4.1-4.2.
// It is created once by the layout builder, mutated by the modifier engine
// and endpoint resolver, carved by the path generator, and then treated as
// read-only by the renderer-facing Model.
//
// Grid is not safe for concurrent use; spec.md §5 requires the core to be
// single-threaded.
type Grid struct {
	width, height int
	h             [][]WallState // (height+1) rows x width columns
	v             [][]WallState // height rows x (width+1) columns
	rooms         [][]*Room     // height rows x width columns
}

// NewGrid builds an nx-by-ny grid of Normal 1x1 rooms with all interior
// walls Open and all perimeter walls Closed, per spec.md §4.1.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("room: grid %dx%d: %w", width, height, geometry.ErrBadDimension)
	}
	g := &Grid{width: width, height: height}

	g.h = make([][]WallState, height+1)
	for y := 0; y <= height; y++ {
		row := make([]WallState, width)
		state := Open
		if y == 0 || y == height {
			state = Closed
		}
		for x := range row {
			row[x] = state
		}
		g.h[y] = row
	}

	g.v = make([][]WallState, height)
	for y := 0; y < height; y++ {
		row := make([]WallState, width+1)
		for x := 0; x <= width; x++ {
			if x == 0 || x == width {
				row[x] = Closed
			} else {
				row[x] = Open
			}
		}
		g.v[y] = row
	}

	g.rooms = make([][]*Room, height)
	for y := 0; y < height; y++ {
		row := make([]*Room, width)
		for x := 0; x < width; x++ {
			row[x] = newRoom(geometry.Rect{X: x, Y: y, Width: 1, Height: 1})
		}
		g.rooms[y] = row
	}
	return g, nil
}

// Width returns the grid's width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height in cells.
func (g *Grid) Height() int { return g.height }

func (g *Grid) contains(loc geometry.RoomLocation) bool {
	return loc.X >= 0 && loc.X < g.width && loc.Y >= 0 && loc.Y < g.height
}

// RoomAt returns the room owning loc, or nil if loc is outside the grid.
func (g *Grid) RoomAt(loc geometry.RoomLocation) *Room {
	if !g.contains(loc) {
		return nil
	}
	return g.rooms[loc.Y][loc.X]
}

// Rooms returns every distinct room in the grid, in row-major order of
// first appearance (each merged room is listed once).
func (g *Grid) Rooms() []*Room {
	seen := make(map[*Room]bool, g.width*g.height)
	out := make([]*Room, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r := g.rooms[y][x]
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// Neighbor returns the cell adjacent to loc in direction dir, or false if
// that cell would lie outside the grid.
func (g *Grid) Neighbor(loc geometry.RoomLocation, dir geometry.Direction) (geometry.RoomLocation, bool) {
	dx, dy := dir.Delta()
	n := loc.Translate(dx, dy)
	return n, g.contains(n)
}

func (g *Grid) canonical(w Wall) (isH bool, row, col int, ok bool) {
	if !g.contains(w.Loc) {
		return false, 0, 0, false
	}
	x, y := w.Loc.X, w.Loc.Y
	switch w.Side {
	case geometry.North:
		return true, y, x, true
	case geometry.South:
		return true, y + 1, x, true
	case geometry.West:
		return false, y, x, true
	case geometry.East:
		return false, y, x + 1, true
	default:
		return false, 0, 0, false
	}
}

// WallState reports the current state of the wall named by w.
func (g *Grid) WallState(w Wall) (WallState, error) {
	isH, row, col, ok := g.canonical(w)
	if !ok {
		return 0, fmt.Errorf("room: wall %+v: %w", w, ErrOutOfBounds)
	}
	if isH {
		return g.h[row][col], nil
	}
	return g.v[row][col], nil
}

func (g *Grid) setWallState(w Wall, s WallState) error {
	isH, row, col, ok := g.canonical(w)
	if !ok {
		return fmt.Errorf("room: wall %+v: %w", w, ErrOutOfBounds)
	}
	if isH {
		g.h[row][col] = s
	} else {
		g.v[row][col] = s
	}
	return nil
}

// Close marks w Closed. Closing is idempotent and does not require the
// wall to currently be Open.
func (g *Grid) Close(w Wall) error {
	return g.setWallState(w, Closed)
}

// Carve marks w Carved. The wall must currently be Open.
func (g *Grid) Carve(w Wall) error {
	state, err := g.WallState(w)
	if err != nil {
		return err
	}
	if state != Open {
		return fmt.Errorf("room: wall %+v: %w", w, ErrWallNotOpen)
	}
	return g.setWallState(w, Carved)
}

func (g *Grid) closeCellSides(loc geometry.RoomLocation) {
	for _, d := range geometry.Directions {
		_ = g.setWallState(Wall{Loc: loc, Side: d}, Closed)
	}
}

// MarkBlank converts every cell in rect from Normal 1x1 to Blank. It
// assumes rect lies within the grid and covers only unmerged cells; the
// modifier engine enforces both before calling this (Blank modifiers apply
// before Merge modifiers, per spec.md §4.5's phase order). Every side of
// every affected cell is set Closed, matching "connections to neighbors are
// treated as closed" from spec.md §4.1.
func (g *Grid) MarkBlank(rect geometry.Rect) error {
	if !rect.FitsWithin(g.width, g.height) {
		return fmt.Errorf("room: blank rect %+v: %w", rect, ErrOutOfBounds)
	}
	for _, loc := range rect.Locations() {
		r := g.RoomAt(loc)
		r.typ = Blank
		g.closeCellSides(loc)
	}
	return nil
}

// Merge replaces the 1x1 Normal rooms covering rect with a single Room
// spanning it, per spec.md §4.2. Every cell in rect must currently be an
// unmerged Normal room, and the merged room's boundary must have at least
// one side that can still be connected — either a wall onto an interior
// neighbor that isn't Closed, or a side that faces the grid perimeter and
// so can still gain a forced endpoint doorway. A rect entirely walled off
// by Closed interior walls fails with ErrInvalidMerge, per spec.md §4.5.
// Interior walls are marked Carved; each exterior side is Closed if any of
// the cells it replaces had that side Closed.
func (g *Grid) Merge(rect geometry.Rect) (*Room, error) {
	if !rect.FitsWithin(g.width, g.height) {
		return nil, fmt.Errorf("room: merge rect %+v: %w", rect, ErrInvalidMerge)
	}
	for _, loc := range rect.Locations() {
		r := g.RoomAt(loc)
		if r.typ != Normal || !r.Size().IsOne() {
			return nil, fmt.Errorf("room: merge rect %+v: cell %+v: %w", rect, loc, ErrInvalidMerge)
		}
	}
	if !g.rectHasConnectableBoundary(rect) {
		return nil, fmt.Errorf("room: merge rect %+v leaves no connectable side: %w", rect, ErrInvalidMerge)
	}

	merged := newRoom(rect)
	for _, loc := range rect.Locations() {
		g.rooms[loc.Y][loc.X] = merged
	}

	// Interior horizontal walls: rows strictly between the top and bottom edges.
	for y := rect.Y + 1; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			g.h[y][x] = Carved
		}
	}
	// Interior vertical walls: columns strictly between the left and right edges.
	for x := rect.X + 1; x < rect.Right(); x++ {
		for y := rect.Y; y < rect.Bottom(); y++ {
			g.v[y][x] = Carved
		}
	}

	g.unionCloseSide(rect, func(x int) Wall { return Wall{Loc: geometry.RoomLocation{X: x, Y: rect.Y}, Side: geometry.North} }, rect.X, rect.Right())
	g.unionCloseSide(rect, func(x int) Wall { return Wall{Loc: geometry.RoomLocation{X: x, Y: rect.Bottom() - 1}, Side: geometry.South} }, rect.X, rect.Right())
	g.unionCloseSide(rect, func(y int) Wall { return Wall{Loc: geometry.RoomLocation{X: rect.X, Y: y}, Side: geometry.West} }, rect.Y, rect.Bottom())
	g.unionCloseSide(rect, func(y int) Wall { return Wall{Loc: geometry.RoomLocation{X: rect.Right() - 1, Y: y}, Side: geometry.East} }, rect.Y, rect.Bottom())

	return merged, nil
}

// rectHasConnectableBoundary reports whether rect's boundary has at least
// one side that could still join the rest of the maze: a wall facing an
// interior neighbor that isn't Closed, or a wall facing the grid perimeter
// (which endpoint resolution can force open regardless of its state).
func (g *Grid) rectHasConnectableBoundary(rect geometry.Rect) bool {
	connectable := func(loc geometry.RoomLocation, dir geometry.Direction) bool {
		if _, hasNeighbor := g.Neighbor(loc, dir); !hasNeighbor {
			return true
		}
		state, err := g.WallState(Wall{Loc: loc, Side: dir})
		return err == nil && state != Closed
	}
	for x := rect.X; x < rect.Right(); x++ {
		if connectable(geometry.RoomLocation{X: x, Y: rect.Y}, geometry.North) {
			return true
		}
		if connectable(geometry.RoomLocation{X: x, Y: rect.Bottom() - 1}, geometry.South) {
			return true
		}
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		if connectable(geometry.RoomLocation{X: rect.X, Y: y}, geometry.West) {
			return true
		}
		if connectable(geometry.RoomLocation{X: rect.Right() - 1, Y: y}, geometry.East) {
			return true
		}
	}
	return false
}

// unionCloseSide implements the "if any segment was closed, the whole side
// is closed" rule from spec.md §4.2 for one exterior side of a merge.
func (g *Grid) unionCloseSide(_ geometry.Rect, wallAt func(int) Wall, lo, hi int) {
	anyClosed := false
	for i := lo; i < hi; i++ {
		state, _ := g.WallState(wallAt(i))
		if state == Closed {
			anyClosed = true
			break
		}
	}
	if !anyClosed {
		return
	}
	for i := lo; i < hi; i++ {
		_ = g.setWallState(wallAt(i), Closed)
	}
}

// Unblank converts a Blank cell back to Normal, per spec.md §4.6's rule
// that an endpoint landing on a Blank room reclaims it. Every side of the
// cell that has a neighbor cell is reopened; the cell's outer sides (those
// with no neighbor, i.e. grid perimeter) are left untouched, since those
// are the endpoint's business, not the reclaim's. It is a no-op if loc is
// already Normal.
func (g *Grid) Unblank(loc geometry.RoomLocation) error {
	r := g.RoomAt(loc)
	if r == nil {
		return fmt.Errorf("room: unblank %+v: %w", loc, ErrOutOfBounds)
	}
	if r.typ != Blank {
		return nil
	}
	r.typ = Normal
	for _, d := range geometry.Directions {
		if _, ok := g.Neighbor(loc, d); ok {
			_ = g.setWallState(Wall{Loc: loc, Side: d}, Open)
		}
	}
	return nil
}

// MarkEndpoint sets loc's room type to EndpointAnchor, recording that an
// endpoint declaration resolved to it, per spec.md §3's Room type
// enumeration. It is idempotent; calling it on an already-Blank room is a
// caller error (endpoint resolution always Unblanks first).
func (g *Grid) MarkEndpoint(loc geometry.RoomLocation) error {
	r := g.RoomAt(loc)
	if r == nil {
		return fmt.Errorf("room: mark endpoint %+v: %w", loc, ErrOutOfBounds)
	}
	r.typ = EndpointAnchor
	return nil
}

// ResetCarving reverts every Carved wall to Open and clears every room's
// PathID and PathLength, so a fresh path-generation attempt can start from
// the layout produced by the modifier phase. Blank rooms are untouched.
// EndpointAnchor rooms revert to Normal, since which rooms are endpoints
// can change between retries (a Random placement re-resolves on each
// attempt); the caller re-marks them after re-resolving. Note that this
// also reopens any endpoint doorways cut with CarveForce; a caller that
// resolves endpoints once and retries path generation must re-carve those
// doorways after each reset.
func (g *Grid) ResetCarving() {
	for y := range g.h {
		for x := range g.h[y] {
			if g.h[y][x] == Carved {
				g.h[y][x] = Open
			}
		}
	}
	for y := range g.v {
		for x := range g.v[y] {
			if g.v[y][x] == Carved {
				g.v[y][x] = Open
			}
		}
	}
	for _, r := range g.Rooms() {
		r.PathID = 0
		r.PathLength = 0
		if r.typ == EndpointAnchor {
			r.typ = Normal
		}
	}
}

// CarveForce marks w Carved regardless of its current state. It exists for
// the endpoint resolver, which cuts a doorway through what is otherwise the
// permanently-closed grid perimeter.
func (g *Grid) CarveForce(w Wall) error {
	return g.setWallState(w, Carved)
}

// Edge is one exterior wall segment of a room, together with the
// neighboring room across it.
type Edge struct {
	Wall Wall
	Dir  geometry.Direction
	To   *Room
}

// EdgesFrom enumerates every exterior wall segment of r whose current state
// equals state, together with the room across it. Interior segments of a
// merged room (segments whose neighbor cell belongs to r itself) are never
// returned, so callers get one entry per real graph edge regardless of how
// many raw wall slots a merged room's side occupies. Segments on the grid
// perimeter are never returned either, so an Edge's To is never nil.
func (g *Grid) EdgesFrom(r *Room, state WallState) []Edge {
	var out []Edge
	for _, loc := range r.Rect().Locations() {
		for _, d := range geometry.Directions {
			neighborLoc, ok := g.Neighbor(loc, d)
			var neighborRoom *Room
			if ok {
				neighborRoom = g.RoomAt(neighborLoc)
				if neighborRoom == r {
					continue
				}
			}
			w := Wall{Loc: loc, Side: d}
			cur, err := g.WallState(w)
			if err != nil || cur != state {
				continue
			}
			if !ok {
				continue
			}
			out = append(out, Edge{Wall: w, Dir: d, To: neighborRoom})
		}
	}
	return out
}
