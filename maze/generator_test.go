package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/maze"
	"github.com/erbsland-dev/erbsland-maze-go/mazecfg"
	"github.com/erbsland-dev/erbsland-maze-go/modifier"
	"github.com/erbsland-dev/erbsland-maze-go/room"
	"github.com/erbsland-dev/erbsland-maze-go/status"
)

func baseConfig(w, h float64) mazecfg.Config {
	cfg := mazecfg.Default()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 7
	return cfg
}

func TestGenerateDefaultEndpointsProducesConnectedMaze(t *testing.T) {
	cfg := baseConfig(40, 40)
	var events []status.Kind
	result, err := maze.Generate(cfg, func(e status.Event) { events = append(events, e.Kind) })
	require.NoError(t, err)
	assert.NotEmpty(t, result.Model.Rooms)
	assert.Len(t, result.Model.Endpoints, 2)
	assert.Contains(t, events, status.LayoutComputed)
	assert.Contains(t, events, status.Completed)

	for _, r := range result.Model.Rooms {
		if r.Type != room.Blank {
			assert.NotZero(t, r.PathID, "room at %+v was never visited", r.Location)
		}
	}
}

func TestGenerateWithDeclaredEndpointsIncludingDeadEnd(t *testing.T) {
	cfg := baseConfig(50, 50)
	cfg.Endpoints = []endpoint.Declaration{
		{Placement: geometry.TopLeft},
		{Placement: geometry.BottomRight},
		{Placement: geometry.Center, DeadEnd: true},
	}
	result, err := maze.Generate(cfg, nil)
	require.NoError(t, err)
	require.Len(t, result.Model.Endpoints, 3)
	assert.True(t, result.Model.Endpoints[2].DeadEnd)
}

func TestGenerateLayoutOnlySkipsPathGeneration(t *testing.T) {
	cfg := baseConfig(30, 30)
	cfg.LayoutOnly = true
	result, err := maze.Generate(cfg, nil)
	require.NoError(t, err)
	assert.Len(t, result.Model.Endpoints, 2)
	for _, r := range result.Model.Rooms {
		assert.Zero(t, r.PathID)
	}
}

func TestGenerateIgnoreErrorsReturnsPartialResultOnExhaustedRetries(t *testing.T) {
	cfg := baseConfig(7, 3)
	cfg.SideLength = 1.0
	cfg.AllowIslands = false
	cfg.IgnoreErrors = true
	cfg.MaximumAttempts = 1
	cfg.Modifiers.Closings = []modifier.ClosingMod{
		mustClosing(t, modifier.DirectionVertical, geometry.Center, geometry.RoomSize{Width: 7, Height: 1}, geometry.ZeroOffset),
	}
	var events []status.Kind
	result, err := maze.Generate(cfg, func(e status.Event) { events = append(events, e.Kind) })
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Warnings)
	assert.Contains(t, events, status.Aborted)
	assert.Contains(t, events, status.Completed)
}

func TestGenerateIslandsForbiddenFailsWhenGridIsSplit(t *testing.T) {
	cfg := baseConfig(7, 3)
	cfg.SideLength = 1.0
	cfg.AllowIslands = false
	cfg.Modifiers.Closings = []modifier.ClosingMod{
		mustClosing(t, modifier.DirectionVertical, geometry.Center, geometry.RoomSize{Width: 7, Height: 1}, geometry.ZeroOffset),
	}
	_, err := maze.Generate(cfg, nil)
	assert.Error(t, err)
}

func TestGenerateRejectsNonPositiveCanvas(t *testing.T) {
	cfg := baseConfig(0, 30)
	_, err := maze.Generate(cfg, nil)
	assert.Error(t, err)
}

func mustClosing(t *testing.T, ct modifier.ClosingType, p geometry.Placement, size geometry.RoomSize, offset geometry.RoomOffset) modifier.ClosingMod {
	t.Helper()
	mod, err := modifier.NewClosing(modifier.Closing{Type: ct}, p, size, offset)
	require.NoError(t, err)
	return mod
}
