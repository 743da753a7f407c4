package gaussbg

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/gogpu/gaussbg/surface"
)

// Test helper functions shared across gaussbg tests.

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: epoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// at returns the epoch plus ms milliseconds.
func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

var errTainted = errors.New("tainted source")

// taintedSurface refuses pixel read-back.
type taintedSurface struct {
	*surface.ImageSurface
}

func (taintedSurface) ImageData() (*image.NRGBA, error) {
	return nil, errTainted
}

// noBlurConfig returns a 100x100 configuration without blur.
func noBlurConfig() Config {
	cfg := DefaultConfig()
	cfg.Blur = false
	cfg.RenderWidth = 100
	cfg.RenderHeight = 100
	return cfg
}

func samePixels(a, b *image.RGBA) bool {
	if a.Rect != b.Rect || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
