package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// RoomInsets is a CSS-style margin around a rectangle: rows/columns of
// cells to leave untouched on each of the four sides.
type RoomInsets struct {
	Top, Right, Bottom, Left int
}

// IsZero reports whether the insets have no effect.
func (in RoomInsets) IsZero() bool {
	return in.Top == 0 && in.Right == 0 && in.Bottom == 0 && in.Left == 0
}

// Shrink returns r with the insets applied, or false if the result would
// be empty or negative.
func (in RoomInsets) Shrink(r Rect) (Rect, bool) {
	x0 := r.X + in.Left
	y0 := r.Y + in.Top
	x1 := r.Right() - in.Right
	y1 := r.Bottom() - in.Bottom
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// ParseInsets parses a comma-separated CSS-shorthand list of 1 to 4
// integers into (Top, Right, Bottom, Left), following the same shorthand
// rules as the CSS "margin" property:
//
//	1 value  -> all four sides
//	2 values -> vertical, horizontal
//	3 values -> top, horizontal, bottom
//	4 values -> top, right, bottom, left
func ParseInsets(text string) (RoomInsets, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return RoomInsets{}, nil
	}
	fields := strings.Split(text, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return RoomInsets{}, fmt.Errorf("insets %q: %w", text, ErrBadInsets)
		}
		values = append(values, v)
	}
	switch len(values) {
	case 1:
		v := values[0]
		return RoomInsets{Top: v, Right: v, Bottom: v, Left: v}, nil
	case 2:
		return RoomInsets{Top: values[0], Bottom: values[0], Right: values[1], Left: values[1]}, nil
	case 3:
		return RoomInsets{Top: values[0], Right: values[1], Left: values[1], Bottom: values[2]}, nil
	case 4:
		return RoomInsets{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	default:
		return RoomInsets{}, fmt.Errorf("insets %q: %w", text, ErrBadInsets)
	}
}
