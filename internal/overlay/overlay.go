// Package overlay draws debug text onto rendered frames.
package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultColor is the text color of a new Overlay.
var DefaultColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}

// Overlay renders lines of text anchored to the bottom-left corner of an
// image.
type Overlay struct {
	face   font.Face
	src    *image.Uniform
	margin int
}

// New returns an Overlay using the Go Regular font at size points.
func New(size float64) (*Overlay, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &Overlay{
		face:   face,
		src:    image.NewUniform(DefaultColor),
		margin: max(2, int(size/3)),
	}, nil
}

// SetColor changes the text color.
func (o *Overlay) SetColor(c color.Color) {
	o.src = image.NewUniform(c)
}

// LineHeight returns the distance between baselines in pixels.
func (o *Overlay) LineHeight() int {
	return o.face.Metrics().Height.Ceil()
}

// Bounds returns the rectangle Draw covers inside r for lines.
func (o *Overlay) Bounds(r image.Rectangle, lines []string) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	var width fixed.Int26_6
	for _, line := range lines {
		width = max(width, font.MeasureString(o.face, line))
	}
	h := o.LineHeight()*len(lines) + 2*o.margin
	box := image.Rect(r.Min.X, r.Max.Y-h, r.Min.X+width.Ceil()+2*o.margin, r.Max.Y)
	return box.Intersect(r)
}

// Draw writes lines onto dst, the last line closest to the bottom edge.
func (o *Overlay) Draw(dst draw.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	r := dst.Bounds()
	m := o.face.Metrics()
	lh := o.LineHeight()

	d := font.Drawer{Dst: dst, Src: o.src, Face: o.face}
	y := r.Max.Y - o.margin - m.Descent.Ceil() - lh*(len(lines)-1)
	for _, line := range lines {
		d.Dot = fixed.P(r.Min.X+o.margin, y)
		d.DrawString(line)
		y += lh
	}
}

// Close releases the font face.
func (o *Overlay) Close() error {
	return o.face.Close()
}
