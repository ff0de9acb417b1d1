package modifier

import (
	"math/rand"
	"sort"

	"github.com/erbsland-dev/erbsland-maze-go/room"
)

// Set collects every modifier declared for a run, grouped the way spec.md
// §4.5 groups them into phases.
type Set struct {
	Frame    *Frame
	Blanks   []Blank
	Closings []ClosingMod
	Merges   []MergeMod
}

// Apply runs every modifier in Set against g, in phase order (Blanks,
// Closings, Merges) and, within each phase, in placement-class order.
//
// When ignoreErrors is true, a variant that fails to apply is skipped
// rather than aborting the run: its error is collected and returned
// alongside the (nil) error result, mirroring endpoint.ResolveAll's
// ignore_errors switch. When ignoreErrors is false, the first variant
// error aborts the phase and is returned directly.
func Apply(g *room.Grid, gridWidth, gridHeight int, rng *rand.Rand, set Set, ignoreErrors bool) ([]error, error) {
	var warnings []error

	blanks := make([]Variant, 0, len(set.Blanks)+1)
	if set.Frame != nil {
		blanks = append(blanks, *set.Frame)
	}
	for _, b := range set.Blanks {
		blanks = append(blanks, b)
	}
	phaseWarnings, err := applyPhase(g, gridWidth, gridHeight, rng, blanks, ignoreErrors)
	warnings = append(warnings, phaseWarnings...)
	if err != nil {
		return warnings, err
	}

	closings := make([]Variant, 0, len(set.Closings))
	for _, c := range set.Closings {
		closings = append(closings, c)
	}
	phaseWarnings, err = applyPhase(g, gridWidth, gridHeight, rng, closings, ignoreErrors)
	warnings = append(warnings, phaseWarnings...)
	if err != nil {
		return warnings, err
	}

	merges := make([]Variant, 0, len(set.Merges))
	for _, m := range set.Merges {
		merges = append(merges, m)
	}
	phaseWarnings, err = applyPhase(g, gridWidth, gridHeight, rng, merges, ignoreErrors)
	warnings = append(warnings, phaseWarnings...)
	return warnings, err
}

func applyPhase(g *room.Grid, gridWidth, gridHeight int, rng *rand.Rand, variants []Variant, ignoreErrors bool) ([]error, error) {
	sort.SliceStable(variants, func(i, j int) bool {
		return variants[i].OrderKey() < variants[j].OrderKey()
	})
	var warnings []error
	for _, v := range variants {
		if err := v.Apply(g, gridWidth, gridHeight, rng); err != nil {
			if !ignoreErrors {
				return warnings, err
			}
			warnings = append(warnings, err)
		}
	}
	return warnings, nil
}
