// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package plotter provides a pen-relative convenience layer over an
// immediate-mode 2D drawing surface.
//
// # Overview
//
// A Plotter wraps a drawing surface and tracks a logical pen position.
// Callers issue sequential, relative commands (move, line, arc, rounded
// corner) instead of repeatedly spelling out absolute coordinates. Every
// command updates the pen, delegates to the surface, and returns the
// same Plotter, so drawings compose as fluent chains.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/plotter"
//		"github.com/gogpu/plotter/ggsurface"
//	)
//
//	s := ggsurface.NewContext(400, 300)
//	p := plotter.NewForSurface(s)
//
//	p.Center().
//		Begin().
//		HLine(60).
//		ES(10).
//		VLine(40).
//		End(false)
//
//	s.Context().SavePNG("out.png")
//
// # Surfaces
//
// The Surface interface is the full capability set a Plotter consumes.
// Package ggsurface adapts a gg.Context; package pdfsurface writes to a
// PDF document. Surfaces may be published under string ids with
// RegisterSurface and bound by id with New.
//
// # Coordinates
//
// Coordinates are x-right, y-down with the origin at the top left, so
// "north" decreases y. Angles at this interface are in degrees; the
// Surface interface receives radians.
package plotter

// Version is the current version of the plotter library.
const Version = "0.3.0"
