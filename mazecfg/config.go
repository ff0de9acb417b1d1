package mazecfg

import (
	"github.com/erbsland-dev/erbsland-maze-go/endpoint"
	"github.com/erbsland-dev/erbsland-maze-go/layout"
	"github.com/erbsland-dev/erbsland-maze-go/modifier"
)

// DefaultSeed is used whenever Seed is left at its zero value, so a caller
// who forgets to set one still gets a reproducible run instead of a
// time-based one (SPEC_FULL.md §1's determinism-first RNG rule).
const DefaultSeed uint64 = 1

// DefaultMaximumAttempts is the retry budget spec.md §6 defaults to.
const DefaultMaximumAttempts = 20

// Config is the Configuration record spec.md §6 describes: everything a
// caller supplies to run one maze generation.
type Config struct {
	// Width and Height are the canvas size in millimetres. Required, > 0.
	Width, Height float64
	// SideLength is the target room side length in millimetres.
	SideLength float64
	// WallThickness is the rendered wall thickness in millimetres.
	WallThickness float64
	// WidthParity and HeightParity constrain the resolved grid dimensions.
	WidthParity, HeightParity layout.Parity
	// FillMode selects how the resolved grid fills the canvas.
	FillMode layout.FillMode

	// Endpoints declares the path ends. An empty slice resolves to the
	// default west/east pair (package endpoint's own default).
	Endpoints []endpoint.Declaration
	// Modifiers declares the frame/blank/closing/merge modifiers to apply.
	Modifiers modifier.Set

	// AllowIslands permits leftover Normal rooms to become decoy paths.
	AllowIslands bool
	// MaximumAttempts bounds the path-generator retry loop.
	MaximumAttempts int
	// LayoutOnly short-circuits after the endpoint phase, emitting the
	// grid with every wall left open.
	LayoutOnly bool
	// IgnoreErrors turns modifier/generation errors into warnings where
	// spec.md §7 allows it, instead of aborting.
	IgnoreErrors bool
	// Silent suppresses the summary banner cmd/erbslandmaze prints;
	// package maze itself is always silent (it never does I/O).
	Silent bool
	// Seed seeds the shared random stream. Zero means DefaultSeed.
	Seed uint64
}

// Default returns a Config with every field at its spec.md §6 default
// except Width and Height, which the caller must supply.
func Default() Config {
	return Config{
		SideLength:      4.0,
		WallThickness:   1.7,
		WidthParity:     layout.Odd,
		HeightParity:    layout.Odd,
		FillMode:        layout.StretchEdge,
		AllowIslands:    true,
		MaximumAttempts: DefaultMaximumAttempts,
	}
}

// ResolvedSeed returns Seed, or DefaultSeed if Seed is zero.
func (c Config) ResolvedSeed() uint64 {
	if c.Seed == 0 {
		return DefaultSeed
	}
	return c.Seed
}
