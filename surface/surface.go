// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gaussbg/internal/blend"
)

// Errors returned by surfaces.
var (
	// ErrClosed is returned by operations on a closed surface.
	ErrClosed = errors.New("surface: closed")

	// ErrInvalidSize is returned when a surface is resized to a
	// non-positive dimension.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// Surface is the rendering target of a background.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Bounds returns the pixel rectangle of the surface, anchored at (0, 0).
	Bounds() image.Rectangle

	// Clear replaces every pixel with c.
	Clear(c color.Color) error

	// FillRect fills r, clipped to the surface, with c using mode.
	FillRect(r image.Rectangle, c color.Color, mode BlendMode) error

	// FillCircle fills an anti-aliased circle using mode.
	FillCircle(cx, cy, radius float64, c color.Color, mode BlendMode) error

	// DrawImage composites img with its bounds origin placed at at.
	DrawImage(img image.Image, at image.Point, mode BlendMode) error

	// ImageData returns a straight-alpha copy of the surface pixels.
	ImageData() (*image.NRGBA, error)

	// PutImageData replaces the pixels covered by img.Bounds() with the
	// contents of img. Blending is not applied.
	PutImageData(img *image.NRGBA) error

	// Resize changes the surface dimensions. The content is cleared to
	// transparent black.
	Resize(width, height int) error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// BlendMode specifies how source and destination colors are combined.
type BlendMode uint8

const (
	// BlendModeSourceOver is the default Porter-Duff source-over mode.
	BlendModeSourceOver BlendMode = iota

	// BlendModeCopy replaces destination with source.
	BlendModeCopy

	// BlendModeDestinationOut erases the destination where the source is
	// opaque.
	BlendModeDestinationOut

	// BlendModeClear clears the destination.
	BlendModeClear
)

// String returns the canvas name of the mode.
func (m BlendMode) String() string {
	return m.op().String()
}

func (m BlendMode) op() blend.Mode {
	switch m {
	case BlendModeCopy:
		return blend.ModeSource
	case BlendModeDestinationOut:
		return blend.ModeDestinationOut
	case BlendModeClear:
		return blend.ModeClear
	default:
		return blend.ModeSourceOver
	}
}

// premultiplied converts c to premultiplied 8-bit components.
func premultiplied(c color.Color) (r, g, b, a uint8) {
	if c == nil {
		return 0, 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	//nolint:gosec // G115: safe - x>>8 is always in [0, 255]
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}
