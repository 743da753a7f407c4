package filter

import (
	"errors"
	"fmt"
)

// Method names a blur algorithm.
type Method string

// Supported blur methods.
const (
	StackBlur    Method = "stackblur"
	FastBlur     Method = "fastblur"
	IntegralBlur Method = "integralblur"
	StackBoxBlur Method = "stackboxblur"
)

// MaxRadius is the largest radius covered by the reciprocal tables.
// Larger radii are clamped.
const MaxRadius = 254

// MaxIterations bounds the number of passes of the iterated filters.
const MaxIterations = 3

// ErrUnknownMethod is returned by Lookup for an unrecognized method name.
var ErrUnknownMethod = errors.New("filter: unknown blur method")

// Func blurs pix in place. pix holds width*height straight-alpha RGBA
// pixels. A radius below 1 leaves pix untouched.
type Func func(pix []uint8, width, height, radius, iterations int)

// Methods returns every supported method in a stable order.
func Methods() []Method {
	return []Method{StackBlur, FastBlur, IntegralBlur, StackBoxBlur}
}

// Valid reports whether m names a supported method.
func (m Method) Valid() bool {
	switch m {
	case StackBlur, FastBlur, IntegralBlur, StackBoxBlur:
		return true
	default:
		return false
	}
}

// Lookup returns the blur function for method. When alpha is set the
// alpha channel is blurred too; otherwise it is left as is.
func Lookup(method Method, alpha bool) (Func, error) {
	var fn Func
	switch method {
	case StackBoxBlur:
		fn = stackBoxBlurRGB
		if alpha {
			fn = stackBoxBlurRGBA
		}
	case StackBlur:
		fn = channels(stackBlur, alpha)
	case FastBlur:
		fn = channels(fastBlur, alpha)
	case IntegralBlur:
		fn = channels(integralBlur, alpha)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return guard(fn), nil
}

// channels binds the channel count of a multi-channel filter.
func channels(fn func(pix []uint8, width, height, radius, iterations, n int), alpha bool) Func {
	n := 3
	if alpha {
		n = 4
	}
	return func(pix []uint8, width, height, radius, iterations int) {
		fn(pix, width, height, radius, iterations, n)
	}
}

// guard normalizes parameters shared by every filter and rejects buffers
// that do not match the dimensions.
func guard(fn Func) Func {
	return func(pix []uint8, width, height, radius, iterations int) {
		if radius < 1 || width <= 0 || height <= 0 || len(pix) < width*height*4 {
			return
		}
		if radius > MaxRadius {
			radius = MaxRadius
		}
		fn(pix, width, height, radius, clampIterations(iterations))
	}
}

// clampIterations clamps n to [1, MaxIterations].
func clampIterations(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxIterations {
		return MaxIterations
	}
	return n
}
