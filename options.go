// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import "image/color"

// Option configures a Plotter during creation.
// Use functional options to customize the initial stroke style.
//
// Example:
//
//	// Default style (dark 1px stroke)
//	p := plotter.NewForSurface(s)
//
//	// Custom style
//	p := plotter.NewForSurface(s,
//		plotter.WithLineColor(color.White),
//		plotter.WithLineWidth(2))
type Option func(*options)

// options holds optional configuration for Plotter creation.
type options struct {
	lineColor color.Color
	lineWidth float64
}

// defaultOptions returns the default plotter options.
func defaultOptions() options {
	return options{
		lineColor: DefaultLineColor,
		lineWidth: DefaultLineWidth,
	}
}

// WithLineColor sets the initial stroke color. A nil color keeps the
// default.
func WithLineColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.lineColor = c
		}
	}
}

// WithLineWidth sets the initial stroke width. Widths at or below zero
// keep the default.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}
