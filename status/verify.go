package status

import (
	"errors"
	"fmt"

	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/room"
)

// ErrVerifyFailed is the sentinel wrapped by every verification failure;
// the wrapping message carries the specific reason (VerifyFailed's
// Reason field mirrors it).
var ErrVerifyFailed = errors.New("status: maze verification failed")

// Verify runs the four post-attempt checks spec.md §4.8 names:
//  1. every non-dead-end endpoint shares one connected component of
//     carved walls;
//  2. (structurally guaranteed: a wall's state is a single tri-state
//     value, so it can never be both closed and carved at once — no
//     runtime check needed);
//  3. no Blank room has a carved wall;
//  4. every non-Blank room has been visited. This check runs whatever
//     allowIslands is; allowIslands only selects the failure message
//     (with it false, pathgen.Generate already fails with
//     ErrIslandsForbidden rather than leave a room unvisited).
func Verify(g *room.Grid, endpoints []endpoint.Endpoint, allowIslands bool) error {
	if err := verifyEndpointConnectivity(g, endpoints); err != nil {
		return err
	}
	if err := verifyBlanksUncarved(g); err != nil {
		return err
	}
	if err := verifyAllNormalRoomsVisited(g, allowIslands); err != nil {
		return err
	}
	return nil
}

func verifyEndpointConnectivity(g *room.Grid, endpoints []endpoint.Endpoint) error {
	var roots []*room.Room
	for _, ep := range endpoints {
		if !ep.Declaration.DeadEnd {
			roots = append(roots, ep.Room)
		}
	}
	if len(roots) <= 1 {
		return nil
	}
	reached := map[*room.Room]bool{roots[0]: true}
	queue := []*room.Room{roots[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.EdgesFrom(cur, room.Carved) {
			if !reached[e.To] {
				reached[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	for _, r := range roots[1:] {
		if !reached[r] {
			return fmt.Errorf("%w: not every non-dead-end endpoint is in one connected component", ErrVerifyFailed)
		}
	}
	return nil
}

func verifyBlanksUncarved(g *room.Grid) error {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			loc := geometry.RoomLocation{X: x, Y: y}
			r := g.RoomAt(loc)
			if r.Type() != room.Blank {
				continue
			}
			for _, d := range geometry.Directions {
				state, err := g.WallState(room.Wall{Loc: loc, Side: d})
				if err == nil && state == room.Carved {
					return fmt.Errorf("%w: blank room at %+v has a carved wall", ErrVerifyFailed, loc)
				}
			}
		}
	}
	return nil
}

func verifyAllNormalRoomsVisited(g *room.Grid, allowIslands bool) error {
	for _, r := range g.Rooms() {
		if r.Type() != room.Blank && r.PathID == 0 {
			if allowIslands {
				return fmt.Errorf("%w: unvisited room at %+v despite islands being allowed", ErrVerifyFailed, r.Location())
			}
			return fmt.Errorf("%w: unvisited room at %+v", ErrVerifyFailed, r.Location())
		}
	}
	return nil
}
