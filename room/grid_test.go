package room_test

import (
	"errors"
	"testing"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

func TestNewGridDefaults(t *testing.T) {
	g, err := room.NewGrid(3, 2)
	if err != nil {
		t.Fatalf("NewGrid: unexpected error %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", g.Width(), g.Height())
	}
	// Perimeter walls start closed.
	perimeter := []room.Wall{
		{Loc: geometry.RoomLocation{X: 0, Y: 0}, Side: geometry.North},
		{Loc: geometry.RoomLocation{X: 0, Y: 0}, Side: geometry.West},
		{Loc: geometry.RoomLocation{X: 2, Y: 1}, Side: geometry.South},
		{Loc: geometry.RoomLocation{X: 2, Y: 1}, Side: geometry.East},
	}
	for _, w := range perimeter {
		state, err := g.WallState(w)
		if err != nil {
			t.Fatalf("WallState(%+v): unexpected error %v", w, err)
		}
		if state != room.Closed {
			t.Errorf("perimeter wall %+v = %v, want closed", w, state)
		}
	}
	// Interior wall between (0,0) and (1,0) starts open.
	interior := room.Wall{Loc: geometry.RoomLocation{X: 0, Y: 0}, Side: geometry.East}
	state, err := g.WallState(interior)
	if err != nil {
		t.Fatalf("WallState(%+v): unexpected error %v", interior, err)
	}
	if state != room.Open {
		t.Errorf("interior wall = %v, want open", state)
	}
}

func TestWallSharedBetweenNeighbors(t *testing.T) {
	g, err := room.NewGrid(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	east := room.Wall{Loc: geometry.RoomLocation{X: 0, Y: 0}, Side: geometry.East}
	if err := g.Carve(east); err != nil {
		t.Fatalf("Carve: unexpected error %v", err)
	}
	west := east.Neighbor()
	state, err := g.WallState(west)
	if err != nil {
		t.Fatal(err)
	}
	if state != room.Carved {
		t.Errorf("neighbor view of carved wall = %v, want carved", state)
	}
}

func TestCarveRequiresOpen(t *testing.T) {
	g, err := room.NewGrid(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	w := room.Wall{Loc: geometry.RoomLocation{X: 0, Y: 0}, Side: geometry.North}
	if err := g.Carve(w); !errors.Is(err, room.ErrWallNotOpen) {
		t.Errorf("Carve on closed perimeter wall: got %v, want ErrWallNotOpen", err)
	}
}

func TestMergeCreatesSingleRoom(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	rect := geometry.Rect{X: 0, Y: 0, Width: 2, Height: 2}
	merged, err := g.Merge(rect)
	if err != nil {
		t.Fatalf("Merge: unexpected error %v", err)
	}
	for _, loc := range rect.Locations() {
		if g.RoomAt(loc) != merged {
			t.Errorf("cell %+v not owned by merged room", loc)
		}
	}
	if !merged.IsMerged() {
		t.Error("expected merged room to report IsMerged")
	}
	// Interior wall between the four cells must be carved.
	interior := room.Wall{Loc: geometry.RoomLocation{X: 0, Y: 0}, Side: geometry.East}
	state, err := g.WallState(interior)
	if err != nil {
		t.Fatal(err)
	}
	if state != room.Carved {
		t.Errorf("interior wall of merge = %v, want carved", state)
	}
}

func TestMergeRejectsAlreadyMerged(t *testing.T) {
	g, err := room.NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Merge(geometry.Rect{X: 0, Y: 0, Width: 2, Height: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Merge(geometry.Rect{X: 1, Y: 1, Width: 2, Height: 2}); !errors.Is(err, room.ErrInvalidMerge) {
		t.Errorf("overlapping merge: got %v, want ErrInvalidMerge", err)
	}
}

func TestMergeRejectsFullyEnclosedRect(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	center := geometry.RoomLocation{X: 1, Y: 1}
	for _, d := range geometry.Directions {
		if err := g.Close(room.Wall{Loc: center, Side: d}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.Merge(geometry.Rect{X: 1, Y: 1, Width: 1, Height: 1}); !errors.Is(err, room.ErrInvalidMerge) {
		t.Errorf("fully enclosed merge: got %v, want ErrInvalidMerge", err)
	}
}

func TestMergeAllowsRectTouchingGridPerimeter(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	corner := geometry.RoomLocation{X: 0, Y: 0}
	for _, d := range geometry.Directions {
		_ = g.Close(room.Wall{Loc: corner, Side: d})
	}
	// The corner's North/West sides face the grid perimeter, so it stays
	// connectable even with every side already Closed.
	if _, err := g.Merge(geometry.Rect{X: 0, Y: 0, Width: 1, Height: 1}); err != nil {
		t.Errorf("perimeter-touching merge: unexpected error %v", err)
	}
}

func TestMergeUnionClosesExteriorSide(t *testing.T) {
	g, err := room.NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	// Close the interior north wall of the second cell in row 1 before
	// merging; the first cell's north wall stays open until the merge.
	if err := g.Close(room.Wall{Loc: geometry.RoomLocation{X: 1, Y: 1}, Side: geometry.North}); err != nil {
		t.Fatal(err)
	}
	rect := geometry.Rect{X: 0, Y: 1, Width: 2, Height: 1}
	if _, err := g.Merge(rect); err != nil {
		t.Fatal(err)
	}
	first := room.Wall{Loc: geometry.RoomLocation{X: 0, Y: 1}, Side: geometry.North}
	state, err := g.WallState(first)
	if err != nil {
		t.Fatal(err)
	}
	if state != room.Closed {
		t.Errorf("union-closed exterior wall = %v, want closed", state)
	}
}

func TestMarkBlankClosesAllSides(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	loc := geometry.RoomLocation{X: 1, Y: 1}
	if err := g.MarkBlank(geometry.Rect{X: 1, Y: 1, Width: 1, Height: 1}); err != nil {
		t.Fatal(err)
	}
	r := g.RoomAt(loc)
	if r.Type() != room.Blank {
		t.Fatalf("type = %v, want blank", r.Type())
	}
	for _, d := range geometry.Directions {
		state, err := g.WallState(room.Wall{Loc: loc, Side: d})
		if err != nil {
			t.Fatal(err)
		}
		if state != room.Closed {
			t.Errorf("blank cell side %v = %v, want closed", d, state)
		}
	}
}

func TestMarkEndpointThenResetCarvingReturnsToNormal(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	loc := geometry.RoomLocation{X: 1, Y: 1}
	if err := g.MarkEndpoint(loc); err != nil {
		t.Fatal(err)
	}
	r := g.RoomAt(loc)
	if r.Type() != room.EndpointAnchor {
		t.Fatalf("type = %v, want endpoint_anchor", r.Type())
	}
	g.ResetCarving()
	if r.Type() != room.Normal {
		t.Fatalf("type after reset = %v, want normal", r.Type())
	}
}

func TestEdgesFromMergedRoomSkipsInterior(t *testing.T) {
	g, err := room.NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	rect := geometry.Rect{X: 0, Y: 0, Width: 2, Height: 1}
	merged, err := g.Merge(rect)
	if err != nil {
		t.Fatal(err)
	}
	edges := g.EdgesFrom(merged, room.Open)
	for _, e := range edges {
		if e.To == merged {
			t.Errorf("EdgesFrom returned a self-edge %+v", e)
		}
	}
	// The south side of the merge borders two distinct neighbor cells,
	// both currently open.
	south := 0
	for _, e := range edges {
		if e.Dir == geometry.South {
			south++
		}
	}
	if south != 2 {
		t.Errorf("south-facing open edges = %d, want 2", south)
	}
}

func TestRoomsAreDeduplicated(t *testing.T) {
	g, err := room.NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Merge(geometry.Rect{X: 0, Y: 0, Width: 2, Height: 2}); err != nil {
		t.Fatal(err)
	}
	rooms := g.Rooms()
	if len(rooms) != 1 {
		t.Fatalf("Rooms() length = %d, want 1", len(rooms))
	}
}
