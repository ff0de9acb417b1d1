// Package maze wires layout, modifier, endpoint, pathgen, and status
// together into the end-to-end generation pipeline spec.md §4.7
// describes: build the grid, place endpoints, carve paths, retry on a
// recoverable failure, and hand back a read-only Model of the result.
package maze
