package gaussbg

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/gaussbg/internal/filter"
	"github.com/gogpu/gaussbg/surface"
)

// animate advances and repaints every layer, compositing each onto dst
// with source-over. Layers are drawn from the last to the first, so the
// first layer ends up on top.
func animate(dst surface.Surface, layers []*Layer) error {
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		l.Step()
		if err := l.Paint(); err != nil {
			return err
		}
		if err := dst.DrawImage(l.buffer.Image(), image.Point{}, surface.BlendModeSourceOver); err != nil {
			return err
		}
	}
	return nil
}

// blurSurface reads the pixels of s back, blurs them with fn and writes
// them back. Read and write failures are reported as *PixelAccessError.
func blurSurface(s surface.Surface, fn filter.Func, radius, iterations int) error {
	data, err := s.ImageData()
	if err != nil {
		return &PixelAccessError{Op: "read", Err: err}
	}

	b := data.Bounds()
	if data.Stride != b.Dx()*4 {
		// Filters need tightly packed rows.
		packed := image.NewNRGBA(b)
		draw.Draw(packed, b, data, b.Min, draw.Src)
		data = packed
	}
	fn(data.Pix, b.Dx(), b.Dy(), radius, iterations)

	if err := s.PutImageData(data); err != nil {
		return &PixelAccessError{Op: "write", Err: err}
	}
	return nil
}
