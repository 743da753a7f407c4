// Package filter provides the CPU blur filters used to soften the rendered
// background.
//
// All filters operate in place on a straight-alpha RGBA byte buffer
// (4 bytes per pixel, stride = 4*width), the layout of image.NRGBA and of
// canvas ImageData:
//   - Stack box blur (sliding window sum, reciprocal tables, iterated)
//   - Stack blur (triangular weights, single pass)
//   - Fast blur (compound box blur with a division table)
//   - Integral blur (summed-area table)
//
// Pixels outside the image are taken from the nearest edge pixel.
package filter
