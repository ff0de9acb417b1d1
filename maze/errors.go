package maze

import "errors"

// ErrMaxAttemptsExceeded is returned once the path-generation retry loop
// has exhausted Config.MaximumAttempts without producing a valid maze.
var ErrMaxAttemptsExceeded = errors.New("maze: maximum attempts exceeded without a valid solution")
