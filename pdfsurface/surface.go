// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pdfsurface renders plotter commands into a PDF document.
package pdfsurface

import (
	"image/color"
	"io"
	"math"

	"github.com/gogpu/plotter"
	"github.com/jung-kurt/gofpdf"
)

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opArc
	opClose
)

// pathOp is one recorded path command. A PDF content stream consumes
// its path when painting, so the surface replays the record on every
// Stroke or Fill to keep the path alive, as plotter.Surface requires.
type pathOp struct {
	kind           opKind
	x1, y1, x2, y2 float64
	r, a1, a2      float64
}

// Surface writes plotter commands to a PDF document sized in points.
type Surface struct {
	pdf  *gofpdf.Fpdf
	w, h int
	ops  []pathOp
}

var _ plotter.Surface = (*Surface)(nil)

// New creates a width x height point single-page PDF surface. The
// document font is Helvetica 10, used by Text.
func New(width, height int) *Surface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)
	plotter.Logger().Debug("pdf surface created", "width", width, "height", height)
	return &Surface{pdf: pdf, w: width, h: height}
}

// PDF returns the underlying document, for capabilities beyond
// plotter.Surface such as metadata or extra pages.
func (s *Surface) PDF() *gofpdf.Fpdf { return s.pdf }

// Begin discards the recorded path.
func (s *Surface) Begin() { s.ops = s.ops[:0] }

// MoveTo records a cursor reposition.
func (s *Surface) MoveTo(x, y float64) {
	s.ops = append(s.ops, pathOp{kind: opMove, x1: x, y1: y})
}

// LineTo records a straight segment.
func (s *Surface) LineTo(x, y float64) {
	s.ops = append(s.ops, pathOp{kind: opLine, x1: x, y1: y})
}

// QuadTo records a quadratic curve.
func (s *Surface) QuadTo(cx, cy, x, y float64) {
	s.ops = append(s.ops, pathOp{kind: opQuad, x1: cx, y1: cy, x2: x, y2: y})
}

// Arc records a circular arc.
func (s *Surface) Arc(cx, cy, r, angle1, angle2 float64) {
	s.ops = append(s.ops, pathOp{kind: opArc, x1: cx, y1: cy, r: r, a1: angle1, a2: angle2})
}

// ClosePath records a close.
func (s *Surface) ClosePath() {
	s.ops = append(s.ops, pathOp{kind: opClose})
}

// replay writes the recorded commands into the document's current
// path. gofpdf measures arc angles counterclockwise while the surface
// contract sweeps toward positive y, hence the negation.
func (s *Surface) replay() {
	for _, op := range s.ops {
		switch op.kind {
		case opMove:
			s.pdf.MoveTo(op.x1, op.y1)
		case opLine:
			s.pdf.LineTo(op.x1, op.y1)
		case opQuad:
			s.pdf.CurveTo(op.x1, op.y1, op.x2, op.y2)
		case opArc:
			s.pdf.ArcTo(op.x1, op.y1, op.r, op.r, 0, -deg(op.a1), -deg(op.a2))
		case opClose:
			s.pdf.ClosePath()
		}
	}
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }

// Stroke paints the recorded path's outline. The record survives for
// further drawing.
func (s *Surface) Stroke() error {
	if len(s.ops) == 0 {
		return nil
	}
	s.replay()
	s.pdf.DrawPath("D")
	return s.pdf.Error()
}

// Fill paints the recorded path's interior, keeping the record.
func (s *Surface) Fill() error {
	if len(s.ops) == 0 {
		return nil
	}
	s.replay()
	s.pdf.DrawPath("F")
	return s.pdf.Error()
}

// StrokeRect strokes a rectangle outline without touching the recorded
// path.
func (s *Surface) StrokeRect(x, y, w, h float64) error {
	s.pdf.Rect(x, y, w, h, "D")
	return s.pdf.Error()
}

// SetStrokeColor sets the draw color. An alpha below opaque maps to a
// normal-blend PDF alpha.
func (s *Surface) SetStrokeColor(c color.Color) {
	if c == nil {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	if n.A < 0xff {
		s.pdf.SetAlpha(float64(n.A)/0xff, "Normal")
	}
}

// SetLineWidth sets the stroke width in points.
func (s *Surface) SetLineWidth(w float64) { s.pdf.SetLineWidth(w) }

// Width reports the page width in points.
func (s *Surface) Width() int { return s.w }

// Height reports the page height in points.
func (s *Surface) Height() int { return s.h }

// Text renders t at (x, y) in the document font, y being the baseline.
func (s *Surface) Text(t string, x, y float64) { s.pdf.Text(x, y, t) }

// Clear starts a fresh page. Earlier pages stay in the document, and
// the recorded path survives onto the new page.
func (s *Surface) Clear() { s.pdf.AddPage() }

// Output finalizes the document and writes it to w. The surface is
// closed afterward.
func (s *Surface) Output(w io.Writer) error { return s.pdf.Output(w) }

// SaveFile finalizes the document and writes it to path.
func (s *Surface) SaveFile(path string) error {
	return s.pdf.OutputFileAndClose(path)
}
