package modifier_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/modifier"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

func TestParseClosingTypeAliases(t *testing.T) {
	cases := map[string]modifier.ClosingType{
		"c":                    modifier.CornerPaths,
		"dv":                   modifier.DirectionVertical,
		"direction_horizontal": modifier.DirectionHorizontal,
		"m":                    modifier.MiddlePaths,
		"mn":                   modifier.MiddleNorth,
	}
	for in, want := range cases {
		got, err := modifier.ParseClosingType(in)
		if err != nil {
			t.Fatalf("ParseClosingType(%q): unexpected error %v", in, err)
		}
		if got != want {
			t.Errorf("ParseClosingType(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseClosingTypeInvalid(t *testing.T) {
	if _, err := modifier.ParseClosingType("nope"); !errors.Is(err, modifier.ErrBadClosing) {
		t.Errorf("expected ErrBadClosing, got %v", err)
	}
}

func TestNewClosingRejectsRandom(t *testing.T) {
	_, err := modifier.NewClosing(modifier.Closing{Type: modifier.CornerPaths}, geometry.Random, geometry.SizeSingle, geometry.ZeroOffset)
	if !errors.Is(err, modifier.ErrBadClosing) {
		t.Errorf("expected ErrBadClosing, got %v", err)
	}
}

func TestFrameMarksBlankInsets(t *testing.T) {
	g, err := room.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	f := modifier.Frame{Insets: geometry.RoomInsets{Top: 1, Right: 1, Bottom: 1, Left: 1}}
	if err := f.Apply(g, 5, 5, nil); err != nil {
		t.Fatalf("Apply: unexpected error %v", err)
	}
	for _, loc := range (geometry.Rect{X: 0, Y: 0, Width: 5, Height: 1}).Locations() {
		if g.RoomAt(loc).Type() != room.Blank {
			t.Errorf("top row cell %+v not blank", loc)
		}
	}
	center := geometry.RoomLocation{X: 2, Y: 2}
	if g.RoomAt(center).Type() != room.Normal {
		t.Error("center cell unexpectedly blank")
	}
}

func TestDirectionVerticalClosesAllInteriorAndBoundary(t *testing.T) {
	g, err := room.NewGrid(5, 15)
	if err != nil {
		t.Fatal(err)
	}
	c, err := modifier.NewClosing(modifier.Closing{Type: modifier.DirectionVertical}, geometry.Center, geometry.RoomSize{Width: 5, Height: 15}, geometry.ZeroOffset)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Apply(g, 5, 15, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Apply: unexpected error %v", err)
	}
	for y := 0; y < 15; y++ {
		for x := 0; x < 5; x++ {
			loc := geometry.RoomLocation{X: x, Y: y}
			for _, d := range []geometry.Direction{geometry.North, geometry.South} {
				state, err := g.WallState(room.Wall{Loc: loc, Side: d})
				if err != nil {
					t.Fatal(err)
				}
				if state != room.Closed {
					t.Errorf("cell %+v side %v = %v, want closed", loc, d, state)
				}
			}
		}
	}
}

func TestClosingCornerPathsSelectsFourWalls(t *testing.T) {
	g, err := room.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	rect := geometry.Rect{X: 1, Y: 1, Width: 3, Height: 3}
	c, err := modifier.NewClosing(modifier.Closing{Type: modifier.CornerPaths}, geometry.Center, geometry.RoomSize{Width: 3, Height: 3}, geometry.ZeroOffset)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Apply(g, 5, 5, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	closed := 0
	for _, loc := range rect.Locations() {
		for _, d := range geometry.Directions {
			state, err := g.WallState(room.Wall{Loc: loc, Side: d})
			if err != nil {
				t.Fatal(err)
			}
			if state == room.Closed {
				closed++
			}
		}
	}
	if closed != 4 {
		t.Errorf("closed walls inside rect = %d, want 4", closed)
	}
}

func TestMergeModRejectsUnplaceable(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	m := modifier.NewMerge(geometry.TopLeft, geometry.RoomSize{Width: 5, Height: 5}, geometry.ZeroOffset)
	err = m.Apply(g, 3, 3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, modifier.ErrUnplaceable) {
		t.Errorf("expected ErrUnplaceable, got %v", err)
	}
}

func TestApplyAbortsOnFirstErrorByDefault(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	set := modifier.Set{
		Merges: []modifier.MergeMod{
			modifier.NewMerge(geometry.TopLeft, geometry.RoomSize{Width: 5, Height: 5}, geometry.ZeroOffset),
		},
	}
	warnings, err := modifier.Apply(g, 3, 3, rand.New(rand.NewSource(1)), set, false)
	if !errors.Is(err, modifier.ErrUnplaceable) {
		t.Fatalf("expected ErrUnplaceable, got %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings when ignoreErrors is false, got %v", warnings)
	}
}

func TestApplySkipsFailingVariantWhenIgnoringErrors(t *testing.T) {
	g, err := room.NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	set := modifier.Set{
		Merges: []modifier.MergeMod{
			modifier.NewMerge(geometry.TopLeft, geometry.RoomSize{Width: 5, Height: 5}, geometry.ZeroOffset),
			modifier.NewMerge(geometry.BottomRight, geometry.RoomSize{Width: 2, Height: 2}, geometry.ZeroOffset),
		},
	}
	warnings, err := modifier.Apply(g, 3, 3, rand.New(rand.NewSource(1)), set, true)
	if err != nil {
		t.Fatalf("expected no error with ignoreErrors, got %v", err)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], modifier.ErrUnplaceable) {
		t.Fatalf("expected one ErrUnplaceable warning, got %v", warnings)
	}
	if g.RoomAt(geometry.RoomLocation{X: 1, Y: 1}).Size() != (geometry.RoomSize{Width: 2, Height: 2}) {
		t.Error("expected the surviving merge to still apply")
	}
}
