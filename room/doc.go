// Package room implements the maze's room-and-wall model: a rectangular
// grid of cells, each belonging to exactly one Room, with walls stored once
// per shared side rather than once per owning cell.
//
// # Wall storage
//
// Walls are not attributes of a Room; they live in two arrays owned by the
// Grid, keyed by the canonical (cell, side) pair described in spec §4.9:
// a horizontal-wall array of (height+1) rows by width columns (row y is the
// wall above row y, so row height is the bottom perimeter), and a
// vertical-wall array of height rows by (width+1) columns (column x is the
// wall left of column x, so column width is the right perimeter). A wall
// shared by two cells therefore has exactly one entry, addressed the same
// way from either side.
//
// # Merges
//
// Merging a rectangle of 1x1 Normal rooms replaces them with a single Room
// spanning the rectangle. Interior walls stop being reachable through the
// Room API and are marked carved so no leftover Closed state can block
// traversal; each exterior side inherits Closed if any of the cells it
// replaces had that side Closed, so the merged Room's exterior behaves as
// one edge per side in the path graph.
package room
