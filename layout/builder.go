package layout

import (
	"fmt"
	"math"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

const minGridDimension = 3

// Dimensions is the resolved outcome of the layout builder: the room-grid
// size in cells plus everything a renderer needs to turn a RoomLocation
// into a millimetre rectangle, per spec.md §4.4 and the FillMode it
// selects.
type Dimensions struct {
	Width, Height   float64 // canvas size, mm
	NX, NY          int     // resolved grid size, cells
	SideLength      float64 // requested side length, mm
	WallThickness   float64 // mm
	FillMode        FillMode
	cellW, cellH    float64 // per-cell size actually used for rendering, mm
	offsetX, offY   float64 // top-left offset of the grid block within the canvas, mm
	edgeStretchLeft float64 // extra width folded into column 0 (StretchEdge only)
	edgeStretchTop  float64 // extra height folded into row 0 (StretchEdge only)
}

func resolveCount(lengthMM, sideLength float64, p Parity) (int, error) {
	base := int(math.Round(lengthMM / sideLength))
	n := p.adjust(base)
	if n < minGridDimension {
		return 0, ErrCanvasTooSmall
	}
	return n, nil
}

// Build resolves the grid dimensions for a widthMM x heightMM canvas and
// constructs a fresh room.Grid of Normal 1x1 rooms, per spec.md §4.4.
func Build(widthMM, heightMM float64, opts ...Option) (*room.Grid, Dimensions, error) {
	c := newConfig(opts...)
	if widthMM <= 0 || heightMM <= 0 || c.sideLength <= 0 {
		return nil, Dimensions{}, fmt.Errorf("layout: non-positive canvas or side length: %w", geometry.ErrBadDimension)
	}

	nx, err := resolveCount(widthMM, c.sideLength, c.widthParity)
	if err != nil {
		return nil, Dimensions{}, err
	}
	ny, err := resolveCount(heightMM, c.sideLength, c.heightParity)
	if err != nil {
		return nil, Dimensions{}, err
	}

	g, err := room.NewGrid(nx, ny)
	if err != nil {
		return nil, Dimensions{}, err
	}

	d := Dimensions{
		Width: widthMM, Height: heightMM,
		NX: nx, NY: ny,
		SideLength:    c.sideLength,
		WallThickness: c.wallThickness,
		FillMode:      c.fillMode,
	}
	d.resolveCellGeometry()
	return g, d, nil
}

// resolveCellGeometry computes the per-cell size and block offset used by
// CellRect, following the semantics documented on each FillMode constant.
func (d *Dimensions) resolveCellGeometry() {
	xLen := d.Width / float64(d.NX)
	yLen := d.Height / float64(d.NY)

	switch {
	case d.FillMode.isFixed():
		d.cellW = d.SideLength
		d.cellH = d.SideLength
	case d.FillMode.isSquare():
		side := math.Min(xLen, yLen)
		d.cellW = side
		d.cellH = side
	default:
		d.cellW = xLen
		d.cellH = yLen
	}

	blockW := d.cellW * float64(d.NX)
	blockH := d.cellH * float64(d.NY)
	if d.FillMode.isCentered() {
		d.offsetX = (d.Width - blockW) / 2
		d.offY = (d.Height - blockH) / 2
	}

	if d.FillMode.isEdgeStretched() {
		d.edgeStretchLeft = d.Width - blockW
		d.edgeStretchTop = d.Height - blockH
	}
}

// CellRect returns the millimetre rectangle (x, y, w, h) a renderer should
// draw for the cell at loc.
func (d Dimensions) CellRect(loc geometry.RoomLocation) (x, y, w, h float64) {
	x = d.offsetX + float64(loc.X)*d.cellW
	y = d.offY + float64(loc.Y)*d.cellH
	w, h = d.cellW, d.cellH
	if d.FillMode.isEdgeStretched() {
		if loc.X == 0 {
			w += d.edgeStretchLeft
		} else {
			x += d.edgeStretchLeft
		}
		if loc.Y == 0 {
			h += d.edgeStretchTop
		} else {
			y += d.edgeStretchTop
		}
	}
	return x, y, w, h
}

// RoomRect returns the millimetre rectangle spanning a room's whole
// footprint, honoring multi-cell merges.
func (d Dimensions) RoomRect(rect geometry.Rect) (x, y, w, h float64) {
	x, y, _, _ = d.CellRect(geometry.RoomLocation{X: rect.X, Y: rect.Y})
	x2, y2, w2, h2 := d.CellRect(geometry.RoomLocation{X: rect.Right() - 1, Y: rect.Bottom() - 1})
	return x, y, (x2 + w2) - x, (y2 + h2) - y
}
