package pathgen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/room"
	"github.com/erbsland-dev/erbsland-maze-go/status"
)

const islandPathIDBase = 101

// Generate performs one path-generation attempt against g, per spec.md
// §4.7. endpoints must already be resolved (package endpoint) and their
// doorways carved; the grid's rooms must all have PathID 0 (a fresh grid,
// or one just reset with room.Grid.ResetCarving).
//
// A walk rooted at an endpoint numbers its rooms with that endpoint's
// 1-based declaration index, matching the numbering the reference
// generator uses for its path-end rooms; an endpoint whose room an earlier
// walk already reached keeps that walk's PathID. Decoy island paths, if
// any, are numbered from 101.
//
// sink receives PathsCarved after phases 1-2, IslandsFilled after phase
// 3, and one Joined event per union performed in phase 4, per spec.md
// §4.8. A nil sink is fine.
func Generate(g *room.Grid, endpoints []endpoint.Endpoint, rng *rand.Rand, cfg Config, sink status.Sink) error {
	frontier := make(map[*room.Room]bool, len(endpoints))
	for _, ep := range endpoints {
		frontier[ep.Room] = true
	}

	// Phase 1: one DFS root per non-dead-end endpoint, in declaration order.
	for i, ep := range endpoints {
		if ep.Declaration.DeadEnd {
			continue
		}
		if ep.Room.PathID != 0 {
			continue
		}
		carveFrom(g, ep.Room, i+1, frontier, rng, 0)
	}

	// Phase 2: a short bounded carve for any dead-end endpoint not yet
	// swept up by phase 1. Once its own steps run out, it may still close
	// out into an already-visited room instead of dangling mid-grid.
	for i, ep := range endpoints {
		if !ep.Declaration.DeadEnd {
			continue
		}
		if ep.Room.PathID != 0 {
			continue
		}
		carveFrom(g, ep.Room, i+1, frontier, rng, cfg.DeadEndBudget)
	}
	status.Emit(sink, status.Event{Kind: status.PathsCarved})

	// Phase 3: islands.
	unvisited := unvisitedNormalRooms(g)
	if len(unvisited) > 0 && !cfg.AllowIslands {
		return ErrIslandsForbidden
	}
	pathID := islandPathIDBase
	for _, r := range unvisited {
		if r.PathID != 0 {
			continue
		}
		carveFrom(g, r, pathID, nil, rng, 0)
		pathID++
	}
	status.Emit(sink, status.Event{Kind: status.IslandsFilled, IslandCount: pathID - islandPathIDBase})

	// Phase 4: join every primary (non-dead-end) endpoint into one component.
	return joinPrimaryPaths(g, endpoints, sink)
}

// carveFrom grows a randomized depth-first walk from root, assigning
// pathID to every room it carves into. If frontier is non-nil and the walk
// carves into a room belonging to frontier (another declared endpoint), it
// stops immediately after claiming that room, per spec.md §4.7 step
// 1.3-1.4. If maxSteps is positive, the walk stops once that many walls
// have been carved. When the budget is spent, and whenever the walk
// reaches a room with no unvisited open neighbor, it opens one wall into
// an already-visited neighbor if there is one (meetVisitedNeighbor) and
// ends; it backtracks only from a dead end with no visited open neighbor.
// The walk is therefore not a full DFS tree: it ends at its first dead end
// that borders a visited room, and that wall may close a loop within its
// own path.
func carveFrom(g *room.Grid, root *room.Room, pathID int, frontier map[*room.Room]bool, rng *rand.Rand, maxSteps int) {
	root.PathID = pathID
	stack := []*room.Room{root}
	steps := 0
	for len(stack) > 0 {
		if maxSteps > 0 && steps >= maxSteps {
			meetVisitedNeighbor(g, stack[len(stack)-1], rng)
			return
		}
		top := stack[len(stack)-1]
		var candidates []room.Edge
		for _, e := range g.EdgesFrom(top, room.Open) {
			if e.To.PathID == 0 {
				candidates = append(candidates, e)
			}
		}
		if len(candidates) == 0 {
			if meetVisitedNeighbor(g, top, rng) {
				return
			}
			stack = stack[:len(stack)-1]
			continue
		}
		pick := candidates[rng.Intn(len(candidates))]
		if err := g.Carve(pick.Wall); err != nil {
			// The wall was Open a moment ago; this cannot happen in a
			// single-threaded run, but bail out rather than loop forever.
			return
		}
		pick.To.PathID = pathID
		pick.To.PathLength = top.PathLength + 1
		steps++
		if frontier[pick.To] {
			return
		}
		stack = append(stack, pick.To)
	}
}

// meetVisitedNeighbor opens one open wall from room into an already-carved
// neighbor, letting a walk that can no longer extend join the rest of the
// maze instead of dangling. Reports whether it found one.
func meetVisitedNeighbor(g *room.Grid, r *room.Room, rng *rand.Rand) bool {
	var candidates []room.Edge
	for _, e := range g.EdgesFrom(r, room.Open) {
		if e.To.PathID != 0 {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	pick := candidates[rng.Intn(len(candidates))]
	return g.Carve(pick.Wall) == nil
}

func unvisitedNormalRooms(g *room.Grid) []*room.Room {
	var out []*room.Room
	for _, r := range g.Rooms() {
		if r.Type() != room.Blank && r.PathID == 0 {
			out = append(out, r)
		}
	}
	return out
}

// joinCandidate is one open wall connecting two different primary path
// components, ordered for the deterministic tie-break spec.md §4.7
// mandates. Every candidate wall connects two grid-adjacent cells, so the
// "minimum Manhattan distance" preference the spec names is always
// satisfied trivially (distance 1); the deciding factor is the
// (x,y,side) lexicographic order below.
type joinCandidate struct {
	wall     room.Wall
	pathA    int
	pathB    int
	x, y     int
	sideRank int
}

func joinPrimaryPaths(g *room.Grid, endpoints []endpoint.Endpoint, sink status.Sink) error {
	// A declaration's nominal ID (its index+1) can already have merged into
	// another endpoint's room by the time phase 1 finishes, when carveFrom
	// stopped a walk upon reaching another endpoint's frontier room. Read
	// each endpoint's actual current PathID rather than assuming it still
	// equals its declaration index, or a nominal ID with zero rooms left
	// under it would make the union-find below unsatisfiable.
	seen := make(map[int]bool)
	var primaryIDs []int
	for _, ep := range endpoints {
		if ep.Declaration.DeadEnd {
			continue
		}
		if id := ep.Room.PathID; !seen[id] {
			seen[id] = true
			primaryIDs = append(primaryIDs, id)
		}
	}
	if len(primaryIDs) <= 1 {
		return nil
	}
	primarySet := make(map[int]bool, len(primaryIDs))
	for _, id := range primaryIDs {
		primarySet[id] = true
	}

	uf := newUnionFind(primaryIDs)
	for !uf.allConnected(primaryIDs) {
		candidates := findJoinCandidates(g, uf, primarySet)
		if len(candidates) == 0 {
			return ErrCannotJoin
		}
		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.x != b.x {
				return a.x < b.x
			}
			if a.y != b.y {
				return a.y < b.y
			}
			return a.sideRank < b.sideRank
		})
		best := candidates[0]
		if err := g.Carve(best.wall); err != nil {
			return fmt.Errorf("pathgen: join: %w", err)
		}
		uf.union(best.pathA, best.pathB)
		status.Emit(sink, status.Event{Kind: status.Joined, PathA: best.pathA, PathB: best.pathB})
	}
	return nil
}

func findJoinCandidates(g *room.Grid, uf *unionFind, primarySet map[int]bool) []joinCandidate {
	var out []joinCandidate
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			loc := geometry.RoomLocation{X: x, Y: y}
			for rank, dir := range []geometry.Direction{geometry.North, geometry.West} {
				neighborLoc, ok := g.Neighbor(loc, dir)
				if !ok {
					continue
				}
				w := room.Wall{Loc: loc, Side: dir}
				state, err := g.WallState(w)
				if err != nil || state != room.Open {
					continue
				}
				a := g.RoomAt(loc)
				b := g.RoomAt(neighborLoc)
				if a.PathID == 0 || b.PathID == 0 || a.PathID == b.PathID {
					continue
				}
				if !primarySet[a.PathID] || !primarySet[b.PathID] {
					continue
				}
				if uf.find(a.PathID) == uf.find(b.PathID) {
					continue
				}
				out = append(out, joinCandidate{wall: w, pathA: a.PathID, pathB: b.PathID, x: x, y: y, sideRank: rank})
			}
		}
	}
	return out
}
