package gaussbg

import (
	"math"
	"time"
)

// Controller gates frames to a maximum rate.
//
// A frame is accepted when strictly more than one timestep has passed
// since the last accepted frame. The last call time then moves to now
// minus the remainder of the elapsed time modulo the timestep, so that
// the accepted frames stay on the timestep grid instead of drifting with
// scheduler jitter.
//
// With animation disabled every call is accepted.
type Controller struct {
	timestep  time.Duration
	animation bool
	first     time.Time
	last      time.Time
}

// NewController returns a controller whose first and last call times are
// start.
func NewController(fpsCap float64, animation bool, start time.Time) *Controller {
	c := &Controller{first: start, last: start}
	c.SetRate(fpsCap, animation)
	return c
}

// SetRate changes the frame rate cap and the animation flag. The last call
// time is kept.
func (c *Controller) SetRate(fpsCap float64, animation bool) {
	c.animation = animation
	c.timestep = timestep(fpsCap)
}

// timestep converts a rate cap to the interval between frames. A rate
// that does not give a positive finite interval yields 0.
func timestep(fpsCap float64) time.Duration {
	if !(fpsCap > 0) || math.IsInf(fpsCap, 0) {
		return 0
	}
	return time.Duration(float64(time.Second) / fpsCap)
}

// Timestep returns the minimum interval between accepted frames.
func (c *Controller) Timestep() time.Duration {
	return c.timestep
}

// Ready reports whether a frame should run at now and, if so, records it.
func (c *Controller) Ready(now time.Time) bool {
	delta := now.Sub(c.last)
	if c.animation && delta <= c.timestep {
		return false
	}
	if c.timestep > 0 {
		c.last = now.Add(-(delta % c.timestep))
	} else {
		c.last = now
	}
	return true
}

// First returns the time the controller was started.
func (c *Controller) First() time.Time {
	return c.first
}

// Last returns the corrected time of the last accepted frame.
func (c *Controller) Last() time.Time {
	return c.last
}
