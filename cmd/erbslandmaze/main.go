// Command erbslandmaze generates a maze room/wall layout from the CLI
// grammar spec.md §6 defines and prints the resulting model as JSON.
// SVG rendering flags are accepted for compatibility with that grammar
// but never acted upon; rendering is out of scope for this module.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/erbsland-dev/erbsland-maze-go/geometry"
	"github.com/erbsland-dev/erbsland-maze-go/layout"
	"github.com/erbsland-dev/erbsland-maze-go/maze"
	"github.com/erbsland-dev/erbsland-maze-go/mazecfg"
	"github.com/erbsland-dev/erbsland-maze-go/modifier"
	"github.com/erbsland-dev/erbsland-maze-go/status"
)

// repeatedFlag collects every occurrence of a flag given more than once,
// e.g. -e w -e c.
type repeatedFlag []string

func (r *repeatedFlag) String() string { return fmt.Sprint([]string(*r)) }
func (r *repeatedFlag) Set(v string) error {
	*r = append(*r, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("erbslandmaze", flag.ContinueOnError)

	width := fs.Float64("x", 0, "canvas width in mm (required)")
	height := fs.Float64("y", 0, "canvas height in mm (required)")
	sideLength := fs.Float64("l", 4.0, "target room side length in mm")
	wallThickness := fs.Float64("t", 1.7, "wall thickness in mm")
	fillMode := fs.String("i", "stretch_edge", "fill mode")
	widthParity := fs.String("width-parity", "odd", "width parity: odd|even|none")
	heightParity := fs.String("height-parity", "odd", "height parity: odd|even|none")
	frameInsets := fs.String("f", "", "frame insets, CSS-shorthand")
	layoutOnly := fs.Bool("layout-only", false, "stop after resolving endpoints")
	silent := fs.Bool("silent", false, "suppress the status banner")
	ignoreErrors := fs.Bool("ignore-errors", false, "downgrade recoverable errors to warnings")
	output := fs.String("o", "", "output file path (default: stdout)")
	seed := fs.Uint64("seed", 0, "RNG seed (0 selects the module default)")
	maxAttempts := fs.Int("max-attempts", mazecfg.DefaultMaximumAttempts, "path-generation retry budget")
	allowIslands := fs.Bool("allow-islands", true, "permit decoy paths through unreachable rooms")

	// Accepted for CLI-grammar compatibility; rendering is out of scope.
	fs.Bool("no-marks", false, "unused: SVG error marks (rendering out of scope)")
	fs.String("svg-unit", "mm", "unused: SVG output unit (rendering out of scope)")
	fs.Float64("svg-dpi", 96, "unused: SVG DPI (rendering out of scope)")
	fs.String("svg-zero-point", "top_left", "unused: SVG origin (rendering out of scope)")
	fs.Bool("svg-no-background", false, "unused: SVG background (rendering out of scope)")
	fs.String("svg-background-color", "", "unused: SVG color (rendering out of scope)")
	fs.String("svg-room-color", "", "unused: SVG color (rendering out of scope)")
	var svgEndpointColors repeatedFlag
	fs.Var(&svgEndpointColors, "svg-endpoint-color", "unused: SVG color (rendering out of scope)")

	var endSpecs, blankSpecs, closingSpecs, mergeSpecs repeatedFlag
	fs.Var(&endSpecs, "e", "ENDSPEC: placement[/offset[/x]]")
	fs.Var(&blankSpecs, "b", "BLANKSPEC: placement[/size[/offset]]")
	fs.Var(&closingSpecs, "c", "CLOSINGSPEC: [^]closing/placement[/size[/offset]]")
	fs.Var(&mergeSpecs, "m", "MERGESPEC: placement[/size[/offset]]")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := buildConfig(*width, *height, *sideLength, *wallThickness, *fillMode,
		*widthParity, *heightParity, *frameInsets, *layoutOnly, *silent, *ignoreErrors,
		*seed, *maxAttempts, *allowIslands, endSpecs, blankSpecs, closingSpecs, mergeSpecs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erbslandmaze:", err)
		return 1
	}

	var sink status.Sink
	if !cfg.Silent {
		sink = func(e status.Event) {
			if e.Kind == status.LayoutComputed {
				log.Printf("Room count: %d x %d", e.NX, e.NY)
			}
		}
	}

	result, err := maze.Generate(cfg, sink)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erbslandmaze:", err)
		return 2
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "erbslandmaze: warning:", w)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "erbslandmaze:", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Model); err != nil {
		fmt.Fprintln(os.Stderr, "erbslandmaze:", err)
		return 2
	}
	return 0
}

func buildConfig(width, height, sideLength, wallThickness float64, fillMode, widthParity, heightParity, frameInsets string,
	layoutOnly, silent, ignoreErrors bool, seed uint64, maxAttempts int, allowIslands bool,
	endSpecs, blankSpecs, closingSpecs, mergeSpecs repeatedFlag) (mazecfg.Config, error) {

	cfg := mazecfg.Default()
	cfg.Width, cfg.Height = width, height
	cfg.SideLength = sideLength
	cfg.WallThickness = wallThickness
	cfg.LayoutOnly = layoutOnly
	cfg.Silent = silent
	cfg.IgnoreErrors = ignoreErrors
	cfg.Seed = seed
	cfg.MaximumAttempts = maxAttempts
	cfg.AllowIslands = allowIslands

	if width <= 0 || height <= 0 {
		return mazecfg.Config{}, fmt.Errorf("width and height must both be > 0: %w", geometry.ErrBadDimension)
	}

	fm, err := layout.ParseFillMode(fillMode)
	if err != nil {
		return mazecfg.Config{}, err
	}
	cfg.FillMode = fm

	wp, err := layout.ParseParity(widthParity)
	if err != nil {
		return mazecfg.Config{}, err
	}
	cfg.WidthParity = wp

	hp, err := layout.ParseParity(heightParity)
	if err != nil {
		return mazecfg.Config{}, err
	}
	cfg.HeightParity = hp

	if frameInsets != "" {
		insets, err := geometry.ParseInsets(frameInsets)
		if err != nil {
			return mazecfg.Config{}, err
		}
		cfg.Modifiers.Frame = &modifier.Frame{Insets: insets}
	}

	for _, spec := range endSpecs {
		decl, err := mazecfg.ParseEndSpec(spec)
		if err != nil {
			return mazecfg.Config{}, err
		}
		cfg.Endpoints = append(cfg.Endpoints, decl)
	}

	for _, spec := range blankSpecs {
		b, err := mazecfg.ParseBlankSpec(spec)
		if err != nil {
			return mazecfg.Config{}, err
		}
		cfg.Modifiers.Blanks = append(cfg.Modifiers.Blanks, b)
	}

	for _, spec := range closingSpecs {
		c, err := mazecfg.ParseClosingSpec(spec)
		if err != nil {
			return mazecfg.Config{}, err
		}
		cfg.Modifiers.Closings = append(cfg.Modifiers.Closings, c)
	}

	for _, spec := range mergeSpecs {
		m, err := mazecfg.ParseMergeSpec(spec)
		if err != nil {
			return mazecfg.Config{}, err
		}
		cfg.Modifiers.Merges = append(cfg.Modifiers.Merges, m)
	}

	return cfg, nil
}
