package pathgen

import "errors"

// Sentinel errors for one path-generation attempt.
var (
	// ErrIslandsForbidden indicates unvisited Normal rooms remained after
	// the endpoint and dead-end carve phases while islands were disabled.
	ErrIslandsForbidden = errors.New("pathgen: unvisited rooms remain and islands are forbidden")
	// ErrCannotJoin indicates the join phase ran out of open walls
	// connecting the remaining primary path components.
	ErrCannotJoin = errors.New("pathgen: cannot join all primary paths into one component")
)
