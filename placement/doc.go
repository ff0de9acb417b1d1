// Package placement resolves a symbolic Placement, a RoomSize, and a
// RoomOffset into an absolute rectangle of cells within a grid of a given
// size, per spec.md §4.3.
//
// Random placement redraws a candidate rectangle up to a fixed budget of
// attempts before giving up with ErrConflictAfterRetries, following the
// same retry-with-budget shape spec.md §4.7 mandates for the path
// generator's outer loop.
package placement
