// Package layout turns a millimetre canvas description — width, height,
// side length, wall thickness, parity constraints, and fill mode — into a
// concrete room-grid dimension and a freshly built room.Grid, per
// spec.md §4.4.
//
// Fill mode never changes the resolved (nx,ny); it only controls the
// per-cell millimetre rectangles a renderer would use, which this package
// also computes so a downstream renderer never has to re-derive them from
// the raw configuration.
package layout
