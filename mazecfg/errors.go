package mazecfg

import "errors"

// Sentinel errors for the CLI grammar parsers. Each wraps the underlying
// geometry/modifier parse error that caused it.
var (
	ErrBadEndSpec     = errors.New("mazecfg: malformed ENDSPEC")
	ErrBadBlankSpec   = errors.New("mazecfg: malformed BLANKSPEC")
	ErrBadMergeSpec   = errors.New("mazecfg: malformed MERGESPEC")
	ErrBadClosingSpec = errors.New("mazecfg: malformed CLOSINGSPEC")
)
