// Package status carries progress notifications and the post-attempt
// verifier out of the generation core. The core never performs I/O
// itself (spec.md §5); it pushes Event values to a caller-supplied Sink
// instead.
package status
