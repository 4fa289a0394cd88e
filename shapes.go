// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import "sort"

// Rect describes a named rounded rectangle recorded by RoundRect.
// X, Y is the trace start just right of the top-left corner arc, not
// the rectangle corner itself: the left edge sits at X - Radius.
type Rect struct {
	Width, Height float64
	Radius        float64
	X, Y          float64
}

// dotGlyph is the single-character mark rendered by Point.
const dotGlyph = "•"

// CenterRect strokes an unfilled w by h rectangle centered on the
// surface midpoint. The current path and the pen are untouched.
func (p *Plotter) CenterRect(w, h float64) *Plotter {
	if !p.canDraw() {
		return p
	}
	c := p.Midpoint()
	if err := p.surface.StrokeRect(c.X-w/2, c.Y-h/2, w, h); err != nil {
		p.fail("strokeRect", err)
	}
	return p
}

// CenterSquare strokes a centered square with side w.
func (p *Plotter) CenterSquare(w float64) *Plotter {
	return p.CenterRect(w, w)
}

// RoundRect draws a rounded rectangle and records its descriptor under
// id, overwriting any prior entry with the same id. The trace starts
// at (x, y), just right of the top-left corner, and runs clockwise,
// rounding each corner with the matching compass helper. The pen
// follows the trace and finishes back at (x, y).
func (p *Plotter) RoundRect(width, height, radius, x, y float64, id string) *Plotter {
	p.rects[id] = Rect{Width: width, Height: height, Radius: radius, X: x, Y: y}
	edgeW := width - 2*radius
	edgeH := height - 2*radius
	return p.Begin().
		Move(x, y, true).
		HLine(edgeW).
		ES(radius).
		VLine(edgeH).
		SW(radius).
		HLine(-edgeW).
		WN(radius).
		VLine(-edgeH).
		NE(radius).
		End(false)
}

// RoundRectCentered draws RoundRect centered on the surface midpoint.
func (p *Plotter) RoundRectCentered(width, height, radius float64, id string) *Plotter {
	c := p.Midpoint()
	x := c.X - width/2 + radius
	y := c.Y - height/2
	return p.RoundRect(width, height, radius, x, y, id)
}

// Rect returns the descriptor recorded under id by RoundRect.
func (p *Plotter) Rect(id string) (Rect, bool) {
	r, ok := p.rects[id]
	return r, ok
}

// RectIDs returns the recorded rectangle ids in sorted order.
func (p *Plotter) RectIDs() []string {
	ids := make([]string, 0, len(p.rects))
	for id := range p.rects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Point marks the pen position with a small dot glyph in a path of its
// own. The pen does not move.
func (p *Plotter) Point() *Plotter {
	p.Begin()
	if p.canDraw() {
		p.surface.Text(dotGlyph, p.last.X, p.last.Y)
	}
	return p.End(false)
}

// Label renders s at the pen position. The pen does not move.
func (p *Plotter) Label(s string) *Plotter {
	if p.canDraw() {
		p.surface.Text(s, p.last.X, p.last.Y)
	}
	return p
}
