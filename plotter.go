// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import (
	"fmt"
	"image/color"
)

// Plotter issues pen-relative drawing commands against a Surface. It
// tracks the logical pen position and keeps the surface's own path
// cursor in sync with it. Methods return the receiver so commands
// chain:
//
//	p.Center().Begin().HLine(40).ES(8).VLine(40).End(false)
//
// A Plotter is not safe for concurrent use, and a surface should be
// driven by one Plotter at a time.
type Plotter struct {
	// Drawing is the open-path flag. End clears it; nothing in this
	// package sets it. Callers that want the flag may set it
	// themselves when they open a path.
	Drawing bool

	surface Surface

	origin Point
	last   Point

	lineColor color.Color
	lineWidth float64

	rects map[string]Rect

	err error
}

// New binds a Plotter to the surface registered under surfaceID.
// It returns ErrSurfaceNotFound when no such registration exists.
func New(surfaceID string, opts ...Option) (*Plotter, error) {
	s, ok := LookupSurface(surfaceID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, surfaceID)
	}
	return NewForSurface(s, opts...), nil
}

// NewForSurface binds a Plotter directly to s. A nil surface is
// permitted: the plotter still tracks pen state, but drawing calls are
// ignored rather than dereferencing the absent surface.
func NewForSurface(s Surface, opts ...Option) *Plotter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Plotter{
		surface:   s,
		lineColor: o.lineColor,
		lineWidth: o.lineWidth,
		rects:     make(map[string]Rect),
	}
	if s == nil {
		Logger().Debug("plotter created without a surface; drawing disabled")
		return p
	}
	s.SetStrokeColor(p.lineColor)
	s.SetLineWidth(p.lineWidth)
	Logger().Debug("plotter created", "width", s.Width(), "height", s.Height())
	return p
}

// updateLast is the single choke point for pen movement. With absolute
// set it places the pen at (dx, dy); otherwise it offsets the pen by
// (dx, dy). It returns the new pen position.
func (p *Plotter) updateLast(dx, dy float64, absolute bool) Point {
	if absolute {
		p.last = Pt(dx, dy)
	} else {
		p.last = p.last.Add(Pt(dx, dy))
	}
	return p.last
}

// canDraw reports whether surface calls may be issued.
func (p *Plotter) canDraw() bool {
	return p.surface != nil
}

// fail logs a failed surface operation and records it as the plotter's
// first error. Drawing continues; a path already rendered is never
// rolled back.
func (p *Plotter) fail(op string, err error) {
	Logger().Warn("surface operation failed", "op", op, "err", err)
	if p.err == nil {
		p.err = fmt.Errorf("plotter: %s: %w", op, err)
	}
}

// Surface returns the bound surface, or nil when the plotter was
// created without one.
func (p *Plotter) Surface() Surface { return p.surface }

// Origin returns the fixed pen origin, (0, 0).
func (p *Plotter) Origin() Point { return p.origin }

// Last returns the current pen position.
func (p *Plotter) Last() Point { return p.last }

// Err returns the first surface error encountered, or nil.
func (p *Plotter) Err() error { return p.err }

// LineColor returns the current stroke color.
func (p *Plotter) LineColor() color.Color { return p.lineColor }

// LineWidth returns the current stroke width.
func (p *Plotter) LineWidth() float64 { return p.lineWidth }

// SetLineColor sets the stroke color for segments drawn afterward.
// Segments already drawn keep their color. A nil color is ignored.
func (p *Plotter) SetLineColor(c color.Color) *Plotter {
	if c == nil {
		return p
	}
	p.lineColor = c
	if p.canDraw() {
		p.surface.SetStrokeColor(c)
	}
	return p
}

// SetLineWidth sets the stroke width for segments drawn afterward.
func (p *Plotter) SetLineWidth(w float64) *Plotter {
	p.lineWidth = w
	if p.canDraw() {
		p.surface.SetLineWidth(w)
	}
	return p
}

// Loc returns the pen position formatted as "x, y".
func (p *Plotter) Loc() string { return p.last.String() }
