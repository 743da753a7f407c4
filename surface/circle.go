// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// with one cubic Bézier curve.
const kappa = 0.5522847498307936

// circleBounds returns the integer box enclosing the circle.
func circleBounds(cx, cy, radius float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	)
}

// circleMask rasterizes the circle into a coverage mask the size of box.
// The mask shares storage with the surface and is valid until the next call.
func (s *ImageSurface) circleMask(box image.Rectangle, cx, cy, radius float64) *image.Alpha {
	w, h := box.Dx(), box.Dy()
	if s.raster == nil {
		s.raster = vector.NewRasterizer(w, h)
	} else {
		s.raster.Reset(w, h)
	}
	// Reset restores draw.Over; Src writes every mask pixel.
	s.raster.DrawOp = draw.Src

	x := float32(cx - float64(box.Min.X))
	y := float32(cy - float64(box.Min.Y))
	r := float32(radius)
	k := float32(kappa) * r

	z := s.raster
	z.MoveTo(x+r, y)
	z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	z.ClosePath()

	if cap(s.maskPix) < w*h {
		s.maskPix = make([]uint8, w*h)
	}
	mask := &image.Alpha{
		Pix:    s.maskPix[:w*h],
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
