// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import "math"

// radians converts degrees to the radians the Surface interface takes.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Line draws a straight segment from the pen to the pen offset by
// (dx, dy) and leaves the pen at the far end.
func (p *Plotter) Line(dx, dy float64) *Plotter {
	pt := p.updateLast(dx, dy, false)
	if p.canDraw() {
		p.surface.LineTo(pt.X, pt.Y)
	}
	return p
}

// HLine draws a horizontal segment of length dx.
func (p *Plotter) HLine(dx float64) *Plotter { return p.Line(dx, 0) }

// VLine draws a vertical segment of length dy.
func (p *Plotter) VLine(dy float64) *Plotter { return p.Line(0, dy) }

// Arc draws a circular arc centered on the absolute point (cx, cy)
// with radius r, sweeping clockwise on screen from startDeg to endDeg.
// Angles are in degrees.
//
// The pen does not follow the arc; callers reposition it afterward
// with Move.
func (p *Plotter) Arc(cx, cy, r, startDeg, endDeg float64) *Plotter {
	if p.canDraw() {
		p.surface.Arc(cx, cy, r, radians(startDeg), radians(endDeg))
	}
	return p
}

// ArcTo draws from the pen toward the point offset by (dx, dy),
// rounding the turn with radius r, and leaves the pen on the offset
// point. The route runs along the dominant axis first, takes a
// quadratic corner across the elbow, then finishes along the other
// axis. The radius is clamped to the shorter leg; an axis-aligned
// offset degenerates to a straight segment.
func (p *Plotter) ArcTo(dx, dy, r float64) *Plotter {
	from := p.last
	to := p.updateLast(dx, dy, false)
	if !p.canDraw() {
		return p
	}
	if dx == 0 || dy == 0 {
		p.surface.LineTo(to.X, to.Y)
		return p
	}
	r = math.Min(r, math.Min(math.Abs(dx), math.Abs(dy)))
	sx := math.Copysign(1, dx)
	sy := math.Copysign(1, dy)
	if math.Abs(dx) >= math.Abs(dy) {
		ex, ey := from.X+dx, from.Y
		p.surface.LineTo(ex-sx*r, ey)
		p.surface.QuadTo(ex, ey, ex, ey+sy*r)
	} else {
		ex, ey := from.X, from.Y+dy
		p.surface.LineTo(ex, ey-sy*r)
		p.surface.QuadTo(ex, ey, ex+sx*r, ey)
	}
	p.surface.LineTo(to.X, to.Y)
	return p
}
