package gaussbg

// Bounds is the rectangle an orb is confined to. Both edges are inclusive.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether (x, y) lies within b.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Orb is one drifting circular hole in a layer.
type Orb struct {
	Radius float64
	X, Y   float64
	VX, VY float64
	Bounds Bounds
}

// Step advances the orb by one frame. An orb that reaches or crosses an
// edge of its bounds is clamped onto the edge and its velocity on that
// axis is reversed.
func (o *Orb) Step() {
	o.X += o.VX
	o.Y += o.VY

	if o.X >= o.Bounds.MaxX {
		o.X = o.Bounds.MaxX
		o.VX = -o.VX
	} else if o.X <= o.Bounds.MinX {
		o.X = o.Bounds.MinX
		o.VX = -o.VX
	}

	if o.Y >= o.Bounds.MaxY {
		o.Y = o.Bounds.MaxY
		o.VY = -o.VY
	} else if o.Y <= o.Bounds.MinY {
		o.Y = o.Bounds.MinY
		o.VY = -o.VY
	}
}
