// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultLineColor is the stroke color applied at construction when no
// WithLineColor option is given.
var DefaultLineColor color.Color = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// DefaultLineWidth is the stroke width applied at construction when no
// WithLineWidth option is given.
const DefaultLineWidth = 1.0

// ParseColor resolves a color string to a color.Color. Hex literals
// ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA") and SVG 1.1 color names
// ("steelblue") are accepted; names are case-insensitive.
func ParseColor(s string) (color.Color, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return nil, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}
	if name[0] == '#' {
		return parseHexColor(name)
	}
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// parseHexColor parses "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA".
func parseHexColor(s string) (color.Color, error) {
	hex := s[1:]
	var c color.NRGBA
	c.A = 0xff

	component := func(part string) (uint8, error) {
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		if len(part) == 1 {
			// Shorthand digit: "f" means "ff".
			v *= 17
		}
		return uint8(v), nil
	}

	var parts []string
	switch len(hex) {
	case 3:
		parts = []string{hex[0:1], hex[1:2], hex[2:3]}
	case 4:
		parts = []string{hex[0:1], hex[1:2], hex[2:3], hex[3:4]}
	case 6:
		parts = []string{hex[0:2], hex[2:4], hex[4:6]}
	case 8:
		parts = []string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	dst := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i, part := range parts {
		v, err := component(part)
		if err != nil {
			return nil, err
		}
		*dst[i] = v
	}
	return c, nil
}
