package maze

import (
	"fmt"
	"math/rand"

	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/layout"
	"github.com/erbsland-dev/erbsland-maze-go/mazecfg"
	"github.com/erbsland-dev/erbsland-maze-go/modifier"
	"github.com/erbsland-dev/erbsland-maze-go/pathgen"
	"github.com/erbsland-dev/erbsland-maze-go/room"
	"github.com/erbsland-dev/erbsland-maze-go/status"
)

// Generate runs one full maze generation per Config, emitting progress
// through sink (nil is fine — status.Emit no-ops). It builds the layout,
// applies modifiers, resolves endpoints, and carves paths, retrying the
// endpoint/path phases up to Config.MaximumAttempts times when
// pathgen.Generate or status.Verify reports a recoverable failure, per
// spec.md §4.7. The modifier phase itself is never retried: it has no
// random component beyond a Random-placement modifier's own retries,
// which placement.Resolve already exhausts before returning.
//
// LayoutOnly short-circuits after endpoints are resolved (spec.md §7):
// the grid is built, modifiers applied, and endpoints anchored and their
// doorways cut, but pathgen never runs, so every room keeps PathID 0.
func Generate(cfg mazecfg.Config, sink status.Sink) (*Result, error) {
	dims, g, err := buildLayout(cfg)
	if err != nil {
		return nil, err
	}
	status.Emit(sink, status.Event{Kind: status.LayoutComputed, NX: dims.NX, NY: dims.NY, CellMM: dims.SideLength})

	rng := rand.New(rand.NewSource(int64(cfg.ResolvedSeed())))

	modifierWarnings, err := modifier.Apply(g, dims.NX, dims.NY, rng, cfg.Modifiers, cfg.IgnoreErrors)
	for _, w := range modifierWarnings {
		emitWarning(sink, w)
	}
	if err != nil {
		return nil, fmt.Errorf("maze: applying modifiers: %w", err)
	}

	warnings := append([]error(nil), modifierWarnings...)

	if cfg.LayoutOnly {
		status.Emit(sink, status.Event{Kind: status.AttemptStarted, Attempt: 1})
		g.ResetCarving()
		eps, resolveWarnings, err := endpoint.ResolveAll(g, cfg.Endpoints, dims.NX, dims.NY, rng, cfg.IgnoreErrors)
		for _, w := range resolveWarnings {
			emitWarning(sink, w)
		}
		warnings = append(warnings, resolveWarnings...)
		if err != nil {
			return nil, fmt.Errorf("maze: resolving endpoints: %w", err)
		}
		status.Emit(sink, status.Event{Kind: status.Completed})
		return &Result{Model: newModel(g, dims, eps), Warnings: warnings}, nil
	}

	var eps []endpoint.Endpoint

	for attempt := 1; attempt <= cfg.MaximumAttempts; attempt++ {
		status.Emit(sink, status.Event{Kind: status.AttemptStarted, Attempt: attempt})

		g.ResetCarving()
		var resolveWarnings []error
		eps, resolveWarnings, err = endpoint.ResolveAll(g, cfg.Endpoints, dims.NX, dims.NY, rng, cfg.IgnoreErrors)
		for _, w := range resolveWarnings {
			emitWarning(sink, w)
		}
		warnings = append(warnings, resolveWarnings...)
		if err != nil {
			return nil, fmt.Errorf("maze: resolving endpoints: %w", err)
		}

		pathCfg := pathgen.NewConfig(
			pathgen.WithAllowIslands(cfg.AllowIslands),
		)
		genErr := pathgen.Generate(g, eps, rng, pathCfg, sink)
		if genErr != nil {
			if attempt == cfg.MaximumAttempts {
				if cfg.IgnoreErrors {
					return abortWithPartialResult(sink, g, dims, eps, warnings, genErr), nil
				}
				return nil, fmt.Errorf("maze: %w: %v", ErrMaxAttemptsExceeded, genErr)
			}
			warnings = append(warnings, genErr)
			continue
		}

		if verifyErr := status.Verify(g, eps, cfg.AllowIslands); verifyErr != nil {
			status.Emit(sink, status.Event{Kind: status.VerifyFailed, Attempt: attempt, Reason: verifyErr.Error()})
			if attempt == cfg.MaximumAttempts {
				if cfg.IgnoreErrors {
					return abortWithPartialResult(sink, g, dims, eps, warnings, verifyErr), nil
				}
				return nil, fmt.Errorf("maze: %w: %v", ErrMaxAttemptsExceeded, verifyErr)
			}
			warnings = append(warnings, verifyErr)
			continue
		}

		status.Emit(sink, status.Event{Kind: status.VerifyOk, Attempt: attempt})
		status.Emit(sink, status.Event{Kind: status.Completed})
		return &Result{Model: newModel(g, dims, eps), Warnings: warnings}, nil
	}

	return nil, fmt.Errorf("maze: %w", ErrMaxAttemptsExceeded)
}

// abortWithPartialResult builds the Result returned when the retry budget
// is exhausted with IgnoreErrors set: spec.md §7 has the generator emit
// the partial maze with verification warnings instead of aborting. It
// emits the Aborted event naming the failure that ended the last attempt,
// followed by Completed, and folds that failure into the warning list.
func abortWithPartialResult(sink status.Sink, g *room.Grid, dims layout.Dimensions, eps []endpoint.Endpoint, warnings []error, cause error) *Result {
	status.Emit(sink, status.Event{Kind: status.Aborted, AbortKind: cause})
	warnings = append(warnings, cause)
	status.Emit(sink, status.Event{Kind: status.Completed})
	return &Result{Model: newModel(g, dims, eps), Warnings: warnings}
}

// emitWarning turns a downgraded modifier or endpoint error into a
// status.Warning event, per SPEC_FULL.md §3.1. The mark carries the
// error's text but no location: the modifier and endpoint packages report
// ignore_errors failures as plain errors, not located ErrorMarks.
func emitWarning(sink status.Sink, err error) {
	status.Emit(sink, status.Event{Kind: status.Warning, Mark: status.ErrorMark{Message: err.Error()}})
}

func buildLayout(cfg mazecfg.Config) (layout.Dimensions, *room.Grid, error) {
	g, dims, err := layout.Build(cfg.Width, cfg.Height,
		layout.WithSideLength(cfg.SideLength),
		layout.WithWallThickness(cfg.WallThickness),
		layout.WithWidthParity(cfg.WidthParity),
		layout.WithHeightParity(cfg.HeightParity),
		layout.WithFillMode(cfg.FillMode),
	)
	return dims, g, err
}
