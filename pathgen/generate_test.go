package pathgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/pathgen"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

func resolveDefaultEndpoints(t *testing.T, g *room.Grid, width, height int) []endpoint.Endpoint {
	t.Helper()
	eps, warnings, err := endpoint.ResolveAll(g, nil, width, height, rand.New(rand.NewSource(7)), false)
	require.NoError(t, err)
	require.Empty(t, warnings)
	return eps
}

func TestGenerateConnectsAllRoomsWithoutIslandsForbidden(t *testing.T) {
	g, err := room.NewGrid(7, 7)
	require.NoError(t, err)
	eps := resolveDefaultEndpoints(t, g, 7, 7)

	err = pathgen.Generate(g, eps, rand.New(rand.NewSource(42)), pathgen.NewConfig(pathgen.WithAllowIslands(true)), nil)
	require.NoError(t, err)

	for _, r := range g.Rooms() {
		assert.NotZero(t, r.PathID, "room %+v was never visited", r.Rect())
	}
}

func TestGenerateJoinsAllPrimaryEndpointsIntoOneComponent(t *testing.T) {
	g, err := room.NewGrid(9, 9)
	require.NoError(t, err)
	eps := resolveDefaultEndpoints(t, g, 9, 9)

	require.NoError(t, pathgen.Generate(g, eps, rand.New(rand.NewSource(3)), pathgen.NewConfig(), nil))

	visited := map[*room.Room]bool{eps[0].Room: true}
	queue := []*room.Room{eps[0].Room}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.EdgesFrom(cur, room.Carved) {
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	assert.True(t, visited[eps[1].Room], "the two endpoints ended up in different components")
}

func TestGenerateIslandsForbiddenAbortsWhenRoomsUnreachable(t *testing.T) {
	g, err := room.NewGrid(5, 5)
	require.NoError(t, err)
	// Wall off the bottom two rows from the rest of the grid entirely, so
	// they can never be reached by any endpoint's carve.
	for x := 0; x < 5; x++ {
		require.NoError(t, g.Close(room.Wall{Loc: geometry.RoomLocation{X: x, Y: 2}, Side: geometry.South}))
	}
	eps := resolveDefaultEndpoints(t, g, 5, 5)

	err = pathgen.Generate(g, eps, rand.New(rand.NewSource(1)), pathgen.NewConfig(pathgen.WithAllowIslands(false)), nil)
	assert.ErrorIs(t, err, pathgen.ErrIslandsForbidden)
}

func TestGenerateDeadEndStaysOutOfPrimaryJoinRequirement(t *testing.T) {
	g, err := room.NewGrid(7, 5)
	require.NoError(t, err)
	decls := []endpoint.Declaration{
		{Placement: geometry.Left},
		{Placement: geometry.Right},
		{Placement: geometry.Top, DeadEnd: true},
	}
	eps, _, err := endpoint.ResolveAll(g, decls, 7, 5, rand.New(rand.NewSource(5)), false)
	require.NoError(t, err)

	require.NoError(t, pathgen.Generate(g, eps, rand.New(rand.NewSource(5)), pathgen.NewConfig(), nil))
	assert.NotZero(t, eps[2].Room.PathID, "dead-end endpoint room was never carved into")
}
