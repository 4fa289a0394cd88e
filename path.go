// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

// Begin opens a fresh path on the surface. Drawing commands issued
// before the next End accumulate into it.
func (p *Plotter) Begin() *Plotter {
	if p.canDraw() {
		p.surface.Begin()
	}
	return p
}

// Start moves the pen to (0, 0) and opens a fresh path. It is
// shorthand for Move(0, 0, true) followed by Begin.
func (p *Plotter) Start() *Plotter {
	return p.Move(0, 0, true).Begin()
}

// End strokes the current path. With closePath set it also closes the
// path, connecting its end back to its start, after the stroke is
// issued. The path itself survives: further drawing extends it until
// Begin opens a new one. End always clears the Drawing flag.
func (p *Plotter) End(closePath bool) *Plotter {
	if p.canDraw() {
		if err := p.surface.Stroke(); err != nil {
			p.fail("stroke", err)
		}
		if closePath {
			p.surface.ClosePath()
		}
	}
	p.Drawing = false
	return p
}

// Stroke renders the current path outline. Pen and path are untouched.
func (p *Plotter) Stroke() *Plotter {
	if p.canDraw() {
		if err := p.surface.Stroke(); err != nil {
			p.fail("stroke", err)
		}
	}
	return p
}

// Fill renders the current path interior. Pen and path are untouched.
func (p *Plotter) Fill() *Plotter {
	if p.canDraw() {
		if err := p.surface.Fill(); err != nil {
			p.fail("fill", err)
		}
	}
	return p
}

// Reset wipes the surface clean. Pen position and stroke style are
// kept.
func (p *Plotter) Reset() *Plotter {
	if p.canDraw() {
		p.surface.Clear()
	}
	return p
}
