// Package endpoint resolves declared path-end placements into concrete
// rooms and exterior openings before the path generator runs.
//
// An endpoint declaration names a symbolic placement (any of the nine
// geometry.Placement values), an optional offset, and whether it is a
// dead end. Resolving a declaration anchors it to a single cell, converts
// a Blank target back to Normal, and — for placements that land on the
// grid's outer edge — cuts a doorway through the perimeter wall on the
// placement's exterior side.
package endpoint
