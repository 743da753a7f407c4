// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawable 2D surface the background renders
// into.
//
// A Surface is a pixel canvas with the handful of primitives the renderer
// needs: solid rectangles and anti-aliased circles under a selectable
// Porter-Duff blend mode, image compositing, straight-alpha pixel
// read-back and write-back, and resizing.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering into a premultiplied *image.RGBA, circle
//     coverage from golang.org/x/image/vector
//   - Third-party backends via the registry
//
// # Pixel Formats
//
// Surfaces store premultiplied colors, like image.RGBA. ImageData returns a
// straight-alpha *image.NRGBA copy, the layout pixel filters operate on,
// and PutImageData stores one back. The round trip is lossless for opaque
// pixels.
//
// # Usage
//
//	s := surface.NewImageSurface(320, 130)
//	defer s.Close()
//
//	s.Clear(color.Transparent)
//	s.FillRect(s.Bounds(), color.NRGBA{0, 0, 0, 255}, surface.BlendModeCopy)
//	s.FillCircle(160, 65, 40, color.Black, surface.BlendModeDestinationOut)
//
//	img := s.Snapshot()
//
// # Backends
//
// Hosts create their surface by the backend name found in their
// configuration. The empty name is ImageBackend:
//
//	s, err := surface.New(name, 320, 130)
package surface
