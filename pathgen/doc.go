// Package pathgen carves the maze itself: a randomized DFS grows one path
// per declared endpoint, dead ends get a short bounded stub, leftover
// rooms are swept into decoy island paths, and a join phase stitches every
// non-dead-end endpoint's path into a single connected component.
//
// A single call to Generate performs one attempt. The caller (package
// maze) is responsible for the outer retry loop spec.md §4.7 describes,
// resetting the grid between attempts.
package pathgen
