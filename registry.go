// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plotter

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

var (
	surfacesMu sync.RWMutex
	surfaces   = make(map[string]Surface)
)

// RegisterSurface publishes s for lookup under id and returns the id.
// An empty id is replaced by a generated UUID. Registering an id that
// is already taken overwrites the earlier entry.
//
// Safe for concurrent use.
func RegisterSurface(id string, s Surface) string {
	if id == "" {
		id = uuid.NewString()
	}
	surfacesMu.Lock()
	surfaces[id] = s
	surfacesMu.Unlock()
	Logger().Debug("surface registered", "id", id)
	return id
}

// UnregisterSurface removes the surface registered under id, if any.
// Plotters already bound to the surface keep drawing on it.
func UnregisterSurface(id string) {
	surfacesMu.Lock()
	delete(surfaces, id)
	surfacesMu.Unlock()
}

// LookupSurface returns the surface registered under id. The second
// return value reports whether a registration exists.
func LookupSurface(id string) (Surface, bool) {
	surfacesMu.RLock()
	s, ok := surfaces[id]
	surfacesMu.RUnlock()
	return s, ok
}

// SurfaceIDs returns the registered ids in sorted order.
func SurfaceIDs() []string {
	surfacesMu.RLock()
	ids := make([]string, 0, len(surfaces))
	for id := range surfaces {
		ids = append(ids, id)
	}
	surfacesMu.RUnlock()
	sort.Strings(ids)
	return ids
}
