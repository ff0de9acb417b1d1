package layout

import "errors"

// Sentinel errors for layout resolution.
var (
	// ErrBadFillMode indicates a fill-mode name is not recognized.
	ErrBadFillMode = errors.New("layout: invalid fill mode")
	// ErrBadParity indicates a parity name is not recognized.
	ErrBadParity = errors.New("layout: invalid parity")
	// ErrCanvasTooSmall indicates the resolved grid would be smaller than
	// the minimum 3x3.
	ErrCanvasTooSmall = errors.New("layout: canvas too small for a 3x3 grid")
)
