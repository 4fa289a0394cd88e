// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import (
	"errors"
	"image/color"
	"testing"
)

// TestParseColorHex tests the hex literal forms.
func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#F00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#f008", color.NRGBA{R: 0xff, A: 0x88}},
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"#336699", color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}},
		{"#33669980", color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0x80}},
		{"  #0f0  ", color.NRGBA{G: 0xff, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) returned error: %v", tt.in, err)
			}
			if got != color.Color(tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestParseColorNames tests SVG color name lookup.
func TestParseColorNames(t *testing.T) {
	got, err := ParseColor("steelblue")
	if err != nil {
		t.Fatalf("ParseColor(steelblue) returned error: %v", err)
	}
	want := color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	if got != color.Color(want) {
		t.Errorf("ParseColor(steelblue) = %v, want %v", got, want)
	}

	// Names are case-insensitive.
	upper, err := ParseColor("SteelBlue")
	if err != nil {
		t.Fatalf("ParseColor(SteelBlue) returned error: %v", err)
	}
	if upper != got {
		t.Errorf("case-insensitive lookup mismatch: %v vs %v", upper, got)
	}
}

// TestParseColorErrors tests rejection of malformed input.
func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"#",
		"#ff",
		"#fffff",
		"#ggg",
		"notacolor",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			if err == nil {
				t.Fatalf("ParseColor(%q) should fail", in)
			}
			if !errors.Is(err, ErrUnknownColor) {
				t.Errorf("ParseColor(%q) err = %v, want ErrUnknownColor", in, err)
			}
		})
	}
}

// TestDefaultLineColor tests the documented dark default stroke.
func TestDefaultLineColor(t *testing.T) {
	want := color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	if DefaultLineColor != color.Color(want) {
		t.Errorf("DefaultLineColor = %v, want %v", DefaultLineColor, want)
	}
	if DefaultLineWidth != 1.0 {
		t.Errorf("DefaultLineWidth = %v, want 1", float64(DefaultLineWidth))
	}
}
