// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/gaussbg/internal/blend"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Circles are rasterized with golang.org/x/image/vector into a coverage
// mask that is then blended span by span. This is the default surface
// implementation for software rendering.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillCircle(400, 300, 100, color.RGBA{255, 0, 0, 255}, surface.BlendModeSourceOver)
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// raster and maskPix are reused across FillCircle calls.
	raster  *vector.Rasterizer
	maskPix []uint8

	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width = max(width, 1)
	height = max(height, 1)

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Bounds returns the surface rectangle.
func (s *ImageSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// Clear replaces every pixel with c.
func (s *ImageSurface) Clear(c color.Color) error {
	if s.closed {
		return ErrClosed
	}

	r, g, b, a := premultiplied(c)
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return nil
}

// FillRect fills r with c using mode.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color, mode BlendMode) error {
	if s.closed {
		return ErrClosed
	}

	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return nil
	}

	cr, cg, cb, ca := premultiplied(c)
	op := mode.op()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.row(y, r.Min.X, r.Max.X)
		blend.FillSpan(op, row, cr, cg, cb, ca, nil)
	}
	return nil
}

// FillCircle fills the circle centered at (cx, cy) with c using mode.
// Edge pixels are blended by their analytic coverage.
func (s *ImageSurface) FillCircle(cx, cy, radius float64, c color.Color, mode BlendMode) error {
	if s.closed {
		return ErrClosed
	}
	if !(radius > 0) {
		return nil
	}

	box := circleBounds(cx, cy, radius)
	clip := box.Intersect(s.Bounds())
	if clip.Empty() {
		return nil
	}

	mask := s.circleMask(box, cx, cy, radius)

	cr, cg, cb, ca := premultiplied(c)
	op := mode.op()
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		off := mask.PixOffset(clip.Min.X-box.Min.X, y-box.Min.Y)
		coverage := mask.Pix[off : off+clip.Dx()]
		blend.FillSpan(op, s.row(y, clip.Min.X, clip.Max.X), cr, cg, cb, ca, coverage)
	}
	return nil
}

// DrawImage composites img with its bounds origin placed at at.
func (s *ImageSurface) DrawImage(img image.Image, at image.Point, mode BlendMode) error {
	if s.closed {
		return ErrClosed
	}
	if img == nil {
		return nil
	}

	src := img.Bounds()
	dst := src.Sub(src.Min).Add(at).Intersect(s.Bounds())
	if dst.Empty() {
		return nil
	}
	sp := src.Min.Add(dst.Min.Sub(at))

	rgba, ok := img.(*image.RGBA)
	if !ok {
		// Convert the visible part to premultiplied RGBA first.
		tmp := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
		draw.Draw(tmp, tmp.Bounds(), img, sp, draw.Src)
		rgba, sp = tmp, image.Point{}
	}

	op := mode.op()
	n := dst.Dx() * 4
	for y := 0; y < dst.Dy(); y++ {
		off := rgba.PixOffset(sp.X, sp.Y+y)
		blend.CompositeSpan(op, s.row(dst.Min.Y+y, dst.Min.X, dst.Max.X), rgba.Pix[off:off+n])
	}
	return nil
}

// ImageData returns a straight-alpha copy of the surface.
func (s *ImageSurface) ImageData() (*image.NRGBA, error) {
	if s.closed {
		return nil, ErrClosed
	}

	out := image.NewNRGBA(s.Bounds())
	draw.Draw(out, out.Bounds(), s.img, image.Point{}, draw.Src)
	return out, nil
}

// PutImageData stores img at its bounds, premultiplying the colors.
func (s *ImageSurface) PutImageData(img *image.NRGBA) error {
	if s.closed {
		return ErrClosed
	}
	if img == nil {
		return nil
	}

	r := img.Bounds().Intersect(s.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(s.img, r, img, r.Min, draw.Src)
	return nil
}

// Resize replaces the backing image with a transparent one of the new size.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	if width == s.width && height == s.height {
		clear(s.img.Pix)
		return nil
	}

	s.width, s.height = width, height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.raster = nil
	s.maskPix = nil
	return nil
}

// row returns the bytes of pixels [x0, x1) on row y.
func (s *ImageSurface) row(y, x0, x1 int) []byte {
	off := s.img.PixOffset(x0, y)
	return s.img.Pix[off : off+(x1-x0)*4]
}

// Verify ImageSurface implements Surface interface.
var _ Surface = (*ImageSurface)(nil)
