// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ImageBackend names the ImageSurface backend. It is used when no backend
// is configured.
const ImageBackend = "image"

// ErrUnknownBackend is returned by New for a name nobody registered.
var ErrUnknownBackend = errors.New("surface: unknown backend")

// Factory creates a surface of width x height pixels.
type Factory func(width, height int) (Surface, error)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// Register makes a backend available to New under name, replacing any
// earlier registration. It panics on an empty name or a nil factory.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		panic("surface: Register with empty name or nil factory")
	}
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = f
}

// Backends returns the registered names in sorted order.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Registered reports whether name can be passed to New. The empty name
// selects ImageBackend.
func Registered(name string) bool {
	_, ok := lookup(name)
	return ok
}

// New creates a surface with the backend registered as name.
func New(name string, width, height int) (Surface, error) {
	f, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return f(width, height)
}

func lookup(name string) (Factory, bool) {
	if name == "" {
		name = ImageBackend
	}
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	f, ok := backends[name]
	return f, ok
}

func init() {
	Register(ImageBackend, func(width, height int) (Surface, error) {
		if width <= 0 || height <= 0 {
			return nil, ErrInvalidSize
		}
		return NewImageSurface(width, height), nil
	})
}
