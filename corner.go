// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

// Compass corner helpers. Each draws a quarter turn named by its two
// directions of travel with radius r, then moves the pen to the far
// side of the turn. North is toward negative y. A pair like NE and EN
// shares an endpoint but bows differently: the control point sits one
// radius from the pen along the first direction of travel.

// corner draws one quarter turn as a quadratic curve. (ctrlDX, ctrlDY)
// places the control point relative to the pen; (dx, dy) is the pen
// offset to the endpoint.
func (p *Plotter) corner(ctrlDX, ctrlDY, dx, dy float64) *Plotter {
	from := p.last
	to := p.updateLast(dx, dy, false)
	if p.canDraw() {
		p.surface.QuadTo(from.X+ctrlDX, from.Y+ctrlDY, to.X, to.Y)
	}
	return p
}

// NE turns north then east.
func (p *Plotter) NE(r float64) *Plotter { return p.corner(0, -r, r, -r) }

// EN turns east then north.
func (p *Plotter) EN(r float64) *Plotter { return p.corner(r, 0, r, -r) }

// SE turns south then east.
func (p *Plotter) SE(r float64) *Plotter { return p.corner(0, r, r, r) }

// ES turns east then south.
func (p *Plotter) ES(r float64) *Plotter { return p.corner(r, 0, r, r) }

// SW turns south then west.
func (p *Plotter) SW(r float64) *Plotter { return p.corner(0, r, -r, r) }

// WS turns west then south.
func (p *Plotter) WS(r float64) *Plotter { return p.corner(-r, 0, -r, r) }

// NW turns north then west.
func (p *Plotter) NW(r float64) *Plotter { return p.corner(0, -r, -r, -r) }

// WN turns west then north.
func (p *Plotter) WN(r float64) *Plotter { return p.corner(-r, 0, -r, -r) }
