package gaussbg

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/gaussbg/surface"
)

// LayerSpec describes how to generate one layer.
type LayerSpec struct {
	// Orbs is the number of orbs in the layer.
	Orbs int `yaml:"orbs"`

	// Radius is the radius of every orb in pixels.
	Radius float64 `yaml:"radius"`

	// MaxVelocity bounds the speed of each orb per axis, in pixels per frame.
	MaxVelocity float64 `yaml:"maxVelocity"`

	// Color is the fill color of the layer, see ParseColor.
	Color string `yaml:"color"`

	// Columns and Rows split the layer into a grid of cells that orbs are
	// assigned to round-robin. Zero leaves that axis unconstrained.
	Columns int `yaml:"columns,omitempty"`
	Rows    int `yaml:"rows,omitempty"`
}

// Layer is a sheet of one color with orb-shaped holes, painted into its own
// buffer.
type Layer struct {
	Spec  LayerSpec
	Color color.NRGBA
	Orbs  []Orb

	buffer *surface.ImageSurface
}

// GenerateLayer creates a layer of width x height pixels from spec.
//
// Orbs are assigned cells in creation order. With Columns set the width is
// split into equal strips and the column index advances with every orb;
// with Rows set the height is split likewise and the row index advances
// each time the column index wraps. Positions are uniform within the cell.
// Each velocity component is uniform in [0, MaxVelocity) with its sign
// chosen by an independent coin flip.
//
// A nil rng uses a randomly seeded source.
func GenerateLayer(spec LayerSpec, width, height int, rng *rand.Rand) (*Layer, error) {
	if spec.Orbs < 0 || spec.Columns < 0 || spec.Rows < 0 {
		return nil, fmt.Errorf("%w: negative count in %+v", ErrInvalidLayer, spec)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: render size %dx%d", ErrInvalidLayer, width, height)
	}
	c, err := ParseColor(spec.Color)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w, h := float64(width), float64(height)
	layer := &Layer{
		Spec:   spec,
		Color:  c,
		Orbs:   make([]Orb, spec.Orbs),
		buffer: surface.NewImageSurface(width, height),
	}

	column, row := 0, 0
	for i := range layer.Orbs {
		b := Bounds{MaxX: w, MaxY: h}

		if spec.Columns > 0 {
			cellW := w / float64(spec.Columns)
			b.MinX = cellW * float64(column)
			b.MaxX = cellW * float64(column+1)
			column++
		}
		if spec.Rows > 0 {
			cellH := h / float64(spec.Rows)
			b.MinY = cellH * float64(row)
			b.MaxY = cellH * float64(row+1)
		}

		if column == spec.Columns {
			column = 0
			row++
		}
		if row == spec.Rows {
			row = 0
		}

		layer.Orbs[i] = Orb{
			Radius: spec.Radius,
			X:      b.MinX + rng.Float64()*(b.MaxX-b.MinX),
			Y:      b.MinY + rng.Float64()*(b.MaxY-b.MinY),
			VX:     randomVelocity(rng, spec.MaxVelocity),
			VY:     randomVelocity(rng, spec.MaxVelocity),
			Bounds: b,
		}
	}
	return layer, nil
}

func randomVelocity(rng *rand.Rand, maxVelocity float64) float64 {
	positive := rng.IntN(2) == 1
	v := rng.Float64() * maxVelocity
	if !positive {
		v = -v
	}
	return v
}

// Step advances every orb by one frame.
func (l *Layer) Step() {
	for i := range l.Orbs {
		l.Orbs[i].Step()
	}
}

// Paint redraws the layer buffer: an opaque fill of the layer color, then
// every orb erased from it with destination-out. The erase uses the layer
// color too, so a translucent color leaves the holes partly filled.
func (l *Layer) Paint() error {
	if err := l.buffer.FillRect(l.buffer.Bounds(), l.Color, surface.BlendModeCopy); err != nil {
		return err
	}
	for i := len(l.Orbs) - 1; i >= 0; i-- {
		o := &l.Orbs[i]
		if err := l.buffer.FillCircle(o.X, o.Y, o.Radius, l.Color, surface.BlendModeDestinationOut); err != nil {
			return err
		}
	}
	return nil
}

// Buffer returns the surface the layer paints into.
func (l *Layer) Buffer() *surface.ImageSurface {
	return l.buffer
}

// Close releases the layer buffer.
func (l *Layer) Close() error {
	return l.buffer.Close()
}
