package endpoint

import "errors"

// Sentinel errors for endpoint resolution.
var (
	// ErrEndpointCollision indicates two declared endpoints resolved to
	// the same room.
	ErrEndpointCollision = errors.New("endpoint: collision between declared endpoints")
	// ErrEndpointTrapped indicates a resolved endpoint's room has no
	// interior neighbor that is not Blank, so it can never be carved into.
	ErrEndpointTrapped = errors.New("endpoint: surrounded by blank rooms")
)
