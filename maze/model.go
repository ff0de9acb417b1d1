package maze

import (
	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/layout"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

// RoomView is a snapshot of one room, independent of the *room.Grid it
// came from, suitable for rendering or JSON encoding.
type RoomView struct {
	Location geometry.RoomLocation
	Size     geometry.RoomSize
	Type     room.Type
	PathID   int
	// Walls maps each of the room's sides to its current state. For a
	// merged room, North and West are read from its top-left cell, East
	// from its top-right cell and South from its bottom-left cell.
	Walls map[geometry.Direction]room.WallState
}

// EndpointView is a snapshot of one resolved endpoint.
type EndpointView struct {
	Loc        geometry.RoomLocation
	Side       geometry.Direction
	HasOpening bool
	DeadEnd    bool
	Trapped    bool
}

// Model is a fresh, read-only structure describing a completed (or
// layout-only) maze: cell geometry, every room's state, and the resolved
// endpoints. It holds no reference to the *room.Grid that produced it, so
// mutating a later run never affects a Model already handed to a caller.
type Model struct {
	Dimensions layout.Dimensions
	Rooms      []RoomView
	Endpoints  []EndpointView
}

// newModel snapshots g, dims and eps into a Model.
func newModel(g *room.Grid, dims layout.Dimensions, eps []endpoint.Endpoint) Model {
	rooms := g.Rooms()
	views := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		walls := make(map[geometry.Direction]room.WallState, 4)
		loc := r.Location()
		rect := r.Rect()
		sides := map[geometry.Direction]geometry.RoomLocation{
			geometry.North: {X: rect.X, Y: rect.Y},
			geometry.West:  {X: rect.X, Y: rect.Y},
			geometry.East:  {X: rect.Right() - 1, Y: rect.Y},
			geometry.South: {X: rect.X, Y: rect.Bottom() - 1},
		}
		for d, sideLoc := range sides {
			state, err := g.WallState(room.Wall{Loc: sideLoc, Side: d})
			if err == nil {
				walls[d] = state
			}
		}
		views = append(views, RoomView{
			Location: loc,
			Size:     r.Size(),
			Type:     r.Type(),
			PathID:   r.PathID,
			Walls:    walls,
		})
	}

	epViews := make([]EndpointView, 0, len(eps))
	for _, ep := range eps {
		epViews = append(epViews, EndpointView{
			Loc:        ep.Loc,
			Side:       ep.Side,
			HasOpening: ep.HasOpening,
			DeadEnd:    ep.Declaration.DeadEnd,
			Trapped:    ep.Trapped,
		})
	}

	return Model{Dimensions: dims, Rooms: views, Endpoints: epViews}
}

// CellRect returns the millimetre rectangle of one grid cell.
func (m Model) CellRect(loc geometry.RoomLocation) (x, y, w, h float64) {
	return m.Dimensions.CellRect(loc)
}

// Result is the outcome of one Generate call: the resolved Model plus any
// non-fatal warnings collected along the way (recoverable retries,
// ignore-errors diagnostics from endpoint resolution).
type Result struct {
	Model    Model
	Warnings []error
}
