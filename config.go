package gaussbg

import (
	"fmt"
	"math"

	"github.com/gogpu/gaussbg/internal/filter"
)

// BlurMethod names the blur filter applied to each frame.
type BlurMethod string

// Supported blur methods.
const (
	StackBlur    BlurMethod = BlurMethod(filter.StackBlur)
	FastBlur     BlurMethod = BlurMethod(filter.FastBlur)
	IntegralBlur BlurMethod = BlurMethod(filter.IntegralBlur)
	StackBoxBlur BlurMethod = BlurMethod(filter.StackBoxBlur)
)

// Valid reports whether m is a supported method.
func (m BlurMethod) Valid() bool {
	return filter.Method(m).Valid()
}

// MaxBlurRadius is the largest effective blur radius; larger radii are
// clamped.
const MaxBlurRadius = filter.MaxRadius

// Config enumerates every recognized background option.
type Config struct {
	// Blur enables the blur pass after each frame.
	Blur bool `yaml:"blur"`

	// BlurRadius is the filter radius in pixels. Below 1 the blur is a no-op.
	BlurRadius int `yaml:"blurRadius"`

	// BlurMethod selects the filter.
	BlurMethod BlurMethod `yaml:"blurMethod"`

	// BlurIterations is the number of passes of the iterated filters,
	// clamped to [1, 3]. StackBlur always runs one pass.
	BlurIterations int `yaml:"blurIterations"`

	// BlurAlpha blurs the alpha channel as well as the colors.
	BlurAlpha bool `yaml:"blurAlpha"`

	// Animation enables the frame loop. When false, Play renders a single
	// frame.
	Animation bool `yaml:"animation"`

	// FPSCap is the maximum number of accepted frames per second.
	FPSCap float64 `yaml:"fpsCap"`

	// RenderWidth and RenderHeight are the surface size in pixels.
	// A non-positive size leaves the surface untouched and no layers are
	// generated.
	RenderWidth  int `yaml:"renderWidth"`
	RenderHeight int `yaml:"renderHeight"`

	// ClearFrames clears the surface before each frame. By default frames
	// are painted over the previous one.
	ClearFrames bool `yaml:"clearFrames"`

	// Debug logs the statistics lines every accepted frame.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Blur:           true,
		BlurRadius:     50,
		BlurMethod:     StackBlur,
		BlurIterations: 1,
		Animation:      true,
		FPSCap:         20,
		RenderWidth:    320,
		RenderHeight:   130,
	}
}

// Validate reports the first option that cannot be used.
func (c Config) Validate() error {
	if c.Animation && (!(c.FPSCap > 0) || math.IsInf(c.FPSCap, 0)) {
		return fmt.Errorf("%w: fpsCap must be a positive number, got %v", ErrInvalidConfig, c.FPSCap)
	}
	if c.Blur && !c.BlurMethod.Valid() {
		return fmt.Errorf("%w: unknown blur method %q", ErrInvalidConfig, c.BlurMethod)
	}
	return nil
}

// hasSize reports whether the render size is usable.
func (c Config) hasSize() bool {
	return c.RenderWidth > 0 && c.RenderHeight > 0
}

// normalized returns c with the blur parameters clamped to their ranges.
func (c Config) normalized() Config {
	c.BlurIterations = max(1, min(c.BlurIterations, filter.MaxIterations))
	c.BlurRadius = min(c.BlurRadius, MaxBlurRadius)
	return c
}
