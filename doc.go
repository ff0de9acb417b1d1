// Package erbslandmaze is a Go library for generating solvable,
// wall-and-room mazes on a millimetre canvas.
//
// 🧩 What is erbsland-maze-go?
//
//	A small, dependency-light toolkit that turns a canvas size and a
//	handful of placement declarations into a fully connected maze:
//		• Geometry primitives: placements, offsets, insets, room rectangles
//		• A canonical wall-array room grid, with merge and blank semantics
//		• A millimetre-to-cell layout builder driven by fill mode and parity
//		• A three-phase modifier engine: Frame, Blank, Closing, Merge
//		• An endpoint placer that anchors path ends and cuts their doorways
//		• A randomized-DFS path generator with dead-end stubs, island fill,
//		  and a join phase that unites every primary endpoint
//		• A push-callback status Sink and a post-attempt Verifier
//
// ✨ Why this shape?
//
//   - Deterministic — identical config and seed produce a byte-identical
//     room/wall model, with the whole pipeline built around one shared
//     random stream
//   - No I/O in the core — layout, modifier, endpoint, and pathgen never
//     touch a file or a terminal; a caller wires status.Sink to logging
//   - Composable — each phase (layout, modifiers, endpoints, paths) is
//     its own package with its own tests and can be driven independently
//
// Under the hood, everything is organized under single-purpose
// subpackages:
//
//	geometry/ — Direction, Placement, RoomLocation, RoomSize, RoomOffset, RoomInsets, Rect
//	room/     — Wall, Room, Grid: the wall-array model and its mutations
//	placement/ — symbolic placement -> absolute rectangle resolution
//	layout/   — canvas millimetres -> grid dimensions and cell geometry
//	modifier/ — Frame/Blank/Closing/Merge and their three-phase engine
//	endpoint/ — endpoint declaration -> anchored room and opening side
//	pathgen/  — the path carver, island fill, and join phase
//	status/   — status events, the Sink callback, and Verify
//	mazecfg/  — the Configuration record and its CLI grammar parsers
//	maze/     — Generate: the end-to-end pipeline and its read-only Model
//	cmd/erbslandmaze/ — a CLI front-end over mazecfg and maze
//
// Quick usage:
//
//	cfg := mazecfg.Default()
//	cfg.Width, cfg.Height = 40, 40
//	result, err := maze.Generate(cfg, nil)
//
// See package maze for the full pipeline.
package erbslandmaze
