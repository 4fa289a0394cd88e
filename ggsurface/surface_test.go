// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// alphaAt samples the rendered alpha at a pixel.
func alphaAt(t *testing.T, s *Surface, x, y int) uint32 {
	t.Helper()
	_, _, _, a := s.Context().Image().At(x, y).RGBA()
	return a
}

// TestNewContextDimensions tests surface sizing.
func TestNewContextDimensions(t *testing.T) {
	s := NewContext(120, 80)

	if s.Width() != 120 {
		t.Errorf("Width() = %d, want 120", s.Width())
	}
	if s.Height() != 80 {
		t.Errorf("Height() = %d, want 80", s.Height())
	}
}

// TestNewWrapsExistingContext tests that the caller's context is shared.
func TestNewWrapsExistingContext(t *testing.T) {
	dc := gg.NewContext(64, 64)
	s := New(dc)

	if s.Context() != dc {
		t.Error("Context() should return the wrapped context")
	}
	if s.Width() != 64 || s.Height() != 64 {
		t.Errorf("size = %dx%d, want 64x64", s.Width(), s.Height())
	}
}

// TestStrokeInksPixels tests that stroking reaches the pixel buffer.
func TestStrokeInksPixels(t *testing.T) {
	s := NewContext(100, 100)
	s.SetStrokeColor(color.NRGBA{R: 0xff, A: 0xff})
	s.SetLineWidth(4)

	s.Begin()
	s.MoveTo(10, 20)
	s.LineTo(60, 20)
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}

	if alphaAt(t, s, 35, 20) == 0 {
		t.Error("pixel on the stroked line should be inked")
	}
	if alphaAt(t, s, 35, 60) != 0 {
		t.Error("pixel far from the line should stay transparent")
	}
}

// TestStrokeKeepsCursor tests that the path survives rendering.
func TestStrokeKeepsCursor(t *testing.T) {
	s := NewContext(100, 100)

	s.Begin()
	s.MoveTo(10, 20)
	s.LineTo(60, 20)
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}

	x, y, ok := s.Context().GetCurrentPoint()
	if !ok {
		t.Fatal("path cursor lost after Stroke")
	}
	if x != 60 || y != 20 {
		t.Errorf("cursor = (%g, %g), want (60, 20)", x, y)
	}
}

// TestFillInksInterior tests filling a closed path.
func TestFillInksInterior(t *testing.T) {
	s := NewContext(100, 100)
	s.SetStrokeColor(color.NRGBA{B: 0xff, A: 0xff})

	s.Begin()
	s.MoveTo(20, 20)
	s.LineTo(70, 20)
	s.LineTo(70, 60)
	s.LineTo(20, 60)
	s.ClosePath()
	if err := s.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	if alphaAt(t, s, 45, 40) == 0 {
		t.Error("interior pixel should be inked after Fill")
	}
	if alphaAt(t, s, 10, 80) != 0 {
		t.Error("exterior pixel should stay transparent")
	}
}

// TestQuadToAdvancesCursor tests the quadratic segment endpoint.
func TestQuadToAdvancesCursor(t *testing.T) {
	s := NewContext(50, 50)

	s.Begin()
	s.MoveTo(0, 0)
	s.QuadTo(10, 0, 10, 10)

	x, y, ok := s.Context().GetCurrentPoint()
	if !ok {
		t.Fatal("no path cursor after QuadTo")
	}
	if x != 10 || y != 10 {
		t.Errorf("cursor = (%g, %g), want (10, 10)", x, y)
	}
}

// TestArcInksCircle tests arc geometry on screen.
func TestArcInksCircle(t *testing.T) {
	s := NewContext(100, 100)
	s.SetStrokeColor(color.NRGBA{R: 0xff, A: 0xff})
	s.SetLineWidth(3)

	// Half circle from (70, 50) through the bottom to (30, 50).
	s.Begin()
	s.Arc(50, 50, 20, 0, math.Pi)
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}

	if alphaAt(t, s, 70, 50) == 0 {
		t.Error("arc start should be inked")
	}
	if alphaAt(t, s, 50, 70) == 0 {
		t.Error("arc midpoint should be inked")
	}
	if alphaAt(t, s, 50, 30) != 0 {
		t.Error("top of the circle is outside the sweep, should stay clear")
	}
}

// TestStrokeRectLeavesPathAlone tests the direct rectangle path bypass.
func TestStrokeRectLeavesPathAlone(t *testing.T) {
	s := NewContext(100, 100)
	s.SetStrokeColor(color.NRGBA{G: 0xff, A: 0xff})
	s.SetLineWidth(2)

	s.Begin()
	s.MoveTo(15, 25)
	if err := s.StrokeRect(30, 30, 40, 20); err != nil {
		t.Fatalf("StrokeRect() = %v", err)
	}

	if alphaAt(t, s, 50, 30) == 0 {
		t.Error("rectangle edge should be inked")
	}
	if alphaAt(t, s, 50, 40) != 0 {
		t.Error("rectangle interior should stay clear")
	}

	x, y, ok := s.Context().GetCurrentPoint()
	if !ok {
		t.Fatal("StrokeRect must not consume the current path")
	}
	if x != 15 || y != 25 {
		t.Errorf("cursor = (%g, %g), want (15, 25)", x, y)
	}
}

// TestStrokeRectWithoutPath tests stroking with no path open.
func TestStrokeRectWithoutPath(t *testing.T) {
	s := NewContext(100, 100)
	s.SetLineWidth(2)

	if err := s.StrokeRect(10, 10, 30, 30); err != nil {
		t.Fatalf("StrokeRect() = %v", err)
	}

	if _, _, ok := s.Context().GetCurrentPoint(); ok {
		t.Error("StrokeRect must not open a path")
	}
	if alphaAt(t, s, 25, 10) == 0 {
		t.Error("rectangle edge should be inked")
	}
}

// TestClearWipesInk tests that Clear resets pixels but not the path.
func TestClearWipesInk(t *testing.T) {
	s := NewContext(100, 100)
	s.SetLineWidth(4)

	s.Begin()
	s.MoveTo(10, 50)
	s.LineTo(90, 50)
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}
	if alphaAt(t, s, 50, 50) == 0 {
		t.Fatal("line should be inked before Clear")
	}

	s.Clear()

	if alphaAt(t, s, 50, 50) != 0 {
		t.Error("Clear should wipe the pixel buffer")
	}
	if _, _, ok := s.Context().GetCurrentPoint(); !ok {
		t.Error("Clear must not discard the current path")
	}
}

// TestSetStrokeColorNilIgnored tests the nil color guard.
func TestSetStrokeColorNilIgnored(t *testing.T) {
	s := NewContext(100, 100)
	s.SetStrokeColor(color.NRGBA{R: 0xff, A: 0xff})
	s.SetLineWidth(2)

	s.SetStrokeColor(nil)

	if err := s.StrokeRect(10, 10, 30, 30); err != nil {
		t.Fatalf("StrokeRect() = %v", err)
	}
	if alphaAt(t, s, 25, 10) == 0 {
		t.Error("previous stroke color should survive SetStrokeColor(nil)")
	}
}

// TestTextWithoutFontFace tests that text is dropped, not fatal,
// when no font is loaded.
func TestTextWithoutFontFace(t *testing.T) {
	s := NewContext(100, 100)
	s.Text("hi", 10, 50)
}
