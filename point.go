// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import "fmt"

// Point is an immutable 2D coordinate. Positioning operations produce
// a fresh Point on every pen transition.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String returns the coordinates formatted as "x, y".
func (p Point) String() string {
	return fmt.Sprintf("%g, %g", p.X, p.Y)
}
