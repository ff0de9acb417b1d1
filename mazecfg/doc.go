// Package mazecfg holds the Configuration record spec.md §6 describes and
// the grammar parsers (ENDSPEC, BLANKSPEC, MERGESPEC, CLOSINGSPEC) that
// turn the CLI's flag values into the declarations package maze consumes.
package mazecfg
