package status_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/pathgen"
	"github.com/erbsland-dev/erbsland-maze-go/room"
	"github.com/erbsland-dev/erbsland-maze-go/status"
)

func TestEmitCallsSink(t *testing.T) {
	var got []status.Kind
	sink := status.Sink(func(e status.Event) { got = append(got, e.Kind) })
	status.Emit(sink, status.Event{Kind: status.LayoutComputed, NX: 9, NY: 9})
	status.Emit(nil, status.Event{Kind: status.Completed})
	if len(got) != 1 || got[0] != status.LayoutComputed {
		t.Errorf("got = %v, want one LayoutComputed event", got)
	}
}

func TestVerifyPassesAfterSuccessfulGeneration(t *testing.T) {
	g, err := room.NewGrid(9, 9)
	if err != nil {
		t.Fatal(err)
	}
	eps, _, err := endpoint.ResolveAll(g, nil, 9, 9, rand.New(rand.NewSource(1)), false)
	if err != nil {
		t.Fatal(err)
	}
	if err := pathgen.Generate(g, eps, rand.New(rand.NewSource(1)), pathgen.NewConfig(), nil); err != nil {
		t.Fatal(err)
	}
	if err := status.Verify(g, eps, true); err != nil {
		t.Errorf("Verify: unexpected error %v", err)
	}
}

func TestVerifyFailsWhenNormalRoomUnvisited(t *testing.T) {
	g, err := room.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	eps, _, err := endpoint.ResolveAll(g, nil, 5, 5, rand.New(rand.NewSource(1)), false)
	if err != nil {
		t.Fatal(err)
	}
	// Only carve one endpoint's room, leaving everything else unvisited.
	// Verify only that endpoint, so the connectivity check passes and the
	// unvisited rooms are what fails.
	eps[0].Room.PathID = 1
	if err := status.Verify(g, eps[:1], true); !errors.Is(err, status.ErrVerifyFailed) {
		t.Errorf("expected ErrVerifyFailed, got %v", err)
	}
}

func TestVerifyFailsWhenBlankRoomCarved(t *testing.T) {
	g, err := room.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	loc := geometry.RoomLocation{X: 2, Y: 2}
	if err := g.MarkBlank(geometry.Rect{X: loc.X, Y: loc.Y, Width: 1, Height: 1}); err != nil {
		t.Fatal(err)
	}
	if err := g.CarveForce(room.Wall{Loc: loc, Side: geometry.North}); err != nil {
		t.Fatal(err)
	}
	if err := status.Verify(g, nil, true); !errors.Is(err, status.ErrVerifyFailed) {
		t.Errorf("expected ErrVerifyFailed, got %v", err)
	}
}
