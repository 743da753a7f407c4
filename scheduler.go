package gaussbg

import (
	"sync"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never
// returned by Schedule.
type Handle uint64

// Scheduler runs callbacks once, at some later point chosen by the
// implementation, typically the next display frame.
type Scheduler interface {
	// Schedule registers fn to run once.
	Schedule(fn func()) Handle

	// Cancel removes a callback that has not run yet. Canceling an unknown
	// or already run handle is a no-op.
	Cancel(h Handle)
}

// FrameScheduler queues callbacks until a host frame loop calls
// RunPending. It suits hosts that own the frame loop, such as game
// engines and terminal event loops.
//
// FrameScheduler is safe for concurrent use.
type FrameScheduler struct {
	mu      sync.Mutex
	next    Handle
	pending []frameCallback
}

type frameCallback struct {
	h  Handle
	fn func()
}

// NewFrameScheduler returns an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule queues fn for the next RunPending call.
func (s *FrameScheduler) Schedule(fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.pending = append(s.pending, frameCallback{h: s.next, fn: fn})
	return s.next
}

// Cancel removes a queued callback.
func (s *FrameScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cb := range s.pending {
		if cb.h == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// RunPending runs the callbacks queued before the call, in order, and
// returns how many ran. Callbacks scheduled while running wait for the
// next call.
func (s *FrameScheduler) RunPending() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, cb := range batch {
		cb.fn()
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// DefaultTimerDelay is the delay used by a TimerScheduler without one.
const DefaultTimerDelay = time.Millisecond

// TimerScheduler runs each callback on its own goroutine after a fixed
// delay. It is the fallback for hosts without a frame callback.
type TimerScheduler struct {
	delay time.Duration

	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// NewTimerScheduler returns a scheduler with the given delay. A
// non-positive delay selects DefaultTimerDelay.
func NewTimerScheduler(delay time.Duration) *TimerScheduler {
	if delay <= 0 {
		delay = DefaultTimerDelay
	}
	return &TimerScheduler{
		delay:  delay,
		timers: make(map[Handle]*time.Timer),
	}
}

// Schedule starts a timer for fn.
func (s *TimerScheduler) Schedule(fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		_, live := s.timers[h]
		delete(s.timers, h)
		s.mu.Unlock()
		if live {
			fn()
		}
	})
	return h
}

// Cancel stops the timer of h.
func (s *TimerScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}
