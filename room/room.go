package room

import "github.com/erbsland-dev/erbsland-maze-go/geometry"

// Room is a node in the maze graph occupying one or more adjacent cells.
// A Room with Size larger than 1x1 is a merged room; its interior walls do
// not exist and its exterior walls behave as a single edge per side.
type Room struct {
	rect geometry.Rect
	typ  Type

	// PathID identifies the connected path component this room belongs to
	// once the path generator has run. 0 means unused; 1-99 are primary
	// paths; 100+ are decoy/island fill paths, per the original layout's
	// numbering convention.
	PathID int
	// PathLength is the number of walls the path generator carved between
	// the root of the walk that reached this room and the room itself.
	// Nothing in this module reads it.
	PathLength int
}

// newRoom creates a Normal room occupying rect.
func newRoom(rect geometry.Rect) *Room {
	return &Room{rect: rect, typ: Normal}
}

// Rect returns the room's cell rectangle.
func (r *Room) Rect() geometry.Rect { return r.rect }

// Location returns the room's top-left cell.
func (r *Room) Location() geometry.RoomLocation {
	return geometry.RoomLocation{X: r.rect.X, Y: r.rect.Y}
}

// Size returns the room's extent in cells.
func (r *Room) Size() geometry.RoomSize {
	return geometry.RoomSize{Width: r.rect.Width, Height: r.rect.Height}
}

// IsMerged reports whether the room spans more than one cell.
func (r *Room) IsMerged() bool {
	return !r.Size().IsOne()
}

// Type returns the room's current type (Normal, Blank or EndpointAnchor).
func (r *Room) Type() Type { return r.typ }

// IsUsed reports whether the room has been assigned to a path.
func (r *Room) IsUsed() bool { return r.PathID != 0 }

// IsPrimaryPath reports whether the room belongs to a primary (non-decoy)
// path component.
func (r *Room) IsPrimaryPath() bool { return r.PathID > 0 && r.PathID < 100 }
