// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import "image/color"

// Surface is the drawing capability a Plotter consumes. It mirrors the
// immediate-mode path model of gg.Context: path construction calls
// accumulate into a current path, and Stroke and Fill render that path
// without discarding it, so a caller may stroke, extend, and stroke
// again.
//
// Coordinates are absolute surface coordinates, x-right, y-down.
// Angles are in radians, increasing toward positive y.
type Surface interface {
	// Begin discards the current path and starts a new one.
	Begin()

	// MoveTo repositions the path cursor without drawing.
	MoveTo(x, y float64)

	// LineTo appends a straight segment from the path cursor.
	LineTo(x, y float64)

	// QuadTo appends a quadratic curve with control point (cx, cy).
	QuadTo(cx, cy, x, y float64)

	// Arc appends a circular arc around (cx, cy) from angle1 to
	// angle2, sweeping toward increasing angles.
	Arc(cx, cy, r, angle1, angle2 float64)

	// ClosePath connects the path cursor back to the subpath start.
	ClosePath()

	// Stroke renders the current path outline, keeping the path.
	Stroke() error

	// Fill renders the current path interior, keeping the path.
	Fill() error

	// StrokeRect strokes a rectangle outline without touching the
	// current path.
	StrokeRect(x, y, w, h float64) error

	// SetStrokeColor sets the color for subsequent strokes.
	SetStrokeColor(c color.Color)

	// SetLineWidth sets the width for subsequent strokes.
	SetLineWidth(w float64)

	// Width reports the surface width in pixels.
	Width() int

	// Height reports the surface height in pixels.
	Height() int

	// Text renders a short string anchored at (x, y).
	Text(s string, x, y float64)

	// Clear wipes all pixel content. The current path survives.
	Clear()
}
