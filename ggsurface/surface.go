// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggsurface adapts a gg.Context to the plotter.Surface
// interface.
package ggsurface

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/plotter"
)

// Surface renders plotter commands through a gg.Context. Stroke and
// Fill use the preserving context variants, so the current path
// survives rendering as plotter.Surface requires.
type Surface struct {
	dc       *gg.Context
	renderer *gg.SoftwareRenderer

	strokeColor color.Color
	lineWidth   float64
}

var _ plotter.Surface = (*Surface)(nil)

// New wraps an existing drawing context. The caller keeps ownership of
// dc and may keep drawing on it directly.
func New(dc *gg.Context) *Surface {
	plotter.Logger().Debug("gg surface created",
		"width", dc.Width(), "height", dc.Height())
	return &Surface{
		dc:          dc,
		renderer:    gg.NewSoftwareRenderer(dc.Width(), dc.Height()),
		strokeColor: color.Black,
		lineWidth:   1,
	}
}

// NewContext creates a surface backed by a fresh width x height
// drawing context.
func NewContext(width, height int) *Surface {
	return New(gg.NewContext(width, height))
}

// Context returns the wrapped drawing context, for capabilities beyond
// plotter.Surface such as fonts, transforms, or saving to PNG.
func (s *Surface) Context() *gg.Context { return s.dc }

// Begin discards the current path and starts a new one.
func (s *Surface) Begin() { s.dc.ClearPath() }

// MoveTo repositions the path cursor without drawing.
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

// LineTo appends a straight segment from the path cursor.
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// QuadTo appends a quadratic curve with control point (cx, cy).
func (s *Surface) QuadTo(cx, cy, x, y float64) { s.dc.QuadraticTo(cx, cy, x, y) }

// Arc appends a circular arc around (cx, cy). The context sweeps
// toward increasing angles, wrapping angle2 forward when needed.
func (s *Surface) Arc(cx, cy, r, angle1, angle2 float64) {
	s.dc.DrawArc(cx, cy, r, angle1, angle2)
}

// ClosePath connects the path cursor back to the subpath start.
func (s *Surface) ClosePath() { s.dc.ClosePath() }

// Stroke renders the current path outline, keeping the path.
func (s *Surface) Stroke() error { return s.dc.StrokePreserve() }

// Fill renders the current path interior, keeping the path.
func (s *Surface) Fill() error { return s.dc.FillPreserve() }

// StrokeRect strokes a rectangle outline. The rectangle goes straight
// to the rasterizer through a throwaway path, so the context's current
// path is untouched.
func (s *Surface) StrokeRect(x, y, w, h float64) error {
	path := gg.NewPath()
	path.Rectangle(x, y, w, h)
	paint := gg.NewPaint()
	paint.SetBrush(gg.Solid(gg.FromColor(s.strokeColor)))
	paint.LineWidth = s.lineWidth
	return s.renderer.Stroke(s.dc.ResizeTarget(), path, paint)
}

// SetStrokeColor sets the color used by Stroke and StrokeRect.
func (s *Surface) SetStrokeColor(c color.Color) {
	if c == nil {
		return
	}
	s.strokeColor = c
	s.dc.SetColor(c)
}

// SetLineWidth sets the stroke width in pixels.
func (s *Surface) SetLineWidth(w float64) {
	s.lineWidth = w
	s.dc.SetLineWidth(w)
}

// Width reports the context width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height reports the context height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Text draws t with its baseline anchor at (x, y). The context needs a
// font face loaded; without one the context drops the call.
func (s *Surface) Text(t string, x, y float64) {
	s.dc.DrawString(t, x, y)
}

// Clear wipes the pixel buffer to transparent. The current path
// survives.
func (s *Surface) Clear() { s.dc.Clear() }
