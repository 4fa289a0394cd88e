// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import "errors"

// Sentinel errors reported by this package. Callers match them with
// errors.Is.
var (
	// ErrSurfaceNotFound is returned by New when no surface is
	// registered under the requested id.
	ErrSurfaceNotFound = errors.New("plotter: surface not found")

	// ErrUnknownColor is returned by ParseColor for a string that is
	// neither a hex literal nor a known color name.
	ErrUnknownColor = errors.New("plotter: unknown color")
)
