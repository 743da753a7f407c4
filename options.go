package gaussbg

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// Clock provides the current time to a background.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock, which carries a monotonic reading.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option configures a Background during creation.
// Use functional options to customize Background behavior.
//
// Example:
//
//	// Default timer-driven loop
//	bg, err := gaussbg.NewBackground(s, layers, cfg)
//
//	// Frames driven by the host loop
//	frames := gaussbg.NewFrameScheduler()
//	bg, err := gaussbg.NewBackground(s, layers, cfg, gaussbg.WithScheduler(frames))
type Option func(*options)

// options holds optional configuration for Background creation.
type options struct {
	clock     Clock
	scheduler Scheduler
	rng       *rand.Rand
	logger    *slog.Logger
	onError   func(error)
}

// defaultOptions returns the default background options.
func defaultOptions() options {
	return options{
		clock: systemClock{},
	}
}

// WithClock sets the time source used for frame gating and statistics.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithScheduler sets the scheduler that drives Play.
// The default is a TimerScheduler with DefaultTimerDelay.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithRand sets the random source used to generate layers.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed makes layer generation reproducible by seeding a PCG source.
func WithSeed(seed1, seed2 uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed1, seed2))
	}
}

// WithLogger sets the logger of the background instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithErrorHandler sets the function receiving errors of frames run by
// the scheduler. The default handler logs them at warn level.
// The handler is called without internal locks held.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}
