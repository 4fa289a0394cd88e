// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

// Move updates the pen and repositions the surface's path cursor
// without drawing. With absolute set the pen lands on (dx, dy);
// otherwise the pen shifts by (dx, dy).
func (p *Plotter) Move(dx, dy float64, absolute bool) *Plotter {
	pt := p.updateLast(dx, dy, absolute)
	if p.canDraw() {
		p.surface.MoveTo(pt.X, pt.Y)
	}
	return p
}

// HMove shifts the pen horizontally by dx.
func (p *Plotter) HMove(dx float64) *Plotter { return p.Move(dx, 0, false) }

// VMove shifts the pen vertically by dy.
func (p *Plotter) VMove(dy float64) *Plotter { return p.Move(0, dy, false) }

// Home moves the pen back to the origin.
func (p *Plotter) Home() *Plotter {
	return p.Move(p.origin.X, p.origin.Y, true)
}

// Center moves the pen to the surface midpoint.
func (p *Plotter) Center() *Plotter {
	c := p.Midpoint()
	return p.Move(c.X, c.Y, true)
}

// Midpoint returns the surface midpoint without moving the pen. It is
// (0, 0) when no surface is bound.
func (p *Plotter) Midpoint() Point {
	if !p.canDraw() {
		return Point{}
	}
	return Pt(float64(p.surface.Width())/2, float64(p.surface.Height())/2)
}
