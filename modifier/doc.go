// Package modifier implements the frame, blank, closing, and merge
// modifiers described in spec.md §4.5, and the three-phase engine that
// applies them to a room.Grid in a deterministic order.
//
// # Phases and ordering
//
// Modifiers run in three phases — Blanks (including Frame), Closings, then
// Merges — and within each phase in class order: center placements first,
// then corners, then edges, then random last. Placement.OrderKey gives the
// sort key; the engine uses a stable sort so modifiers of the same class
// keep the order they were declared in, which keeps a run reproducible for
// a fixed configuration and seed.
package modifier
