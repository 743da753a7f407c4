package filter

// stackPixel holds the channel values of one pixel inside the sliding window.
type stackPixel struct {
	r, g, b, a int
}

// ring is the sliding window of a blur pass: a fixed-size circular buffer
// of 2*radius+1 pixels. head is the oldest slot, the next to be replaced.
type ring struct {
	slots []stackPixel
	head  int
}

func newRing(size int) *ring {
	return &ring{slots: make([]stackPixel, size)}
}

// reset rewinds the ring so that slot 0 is the oldest.
func (s *ring) reset() {
	s.head = 0
}

// set stores a pixel at slot i without moving head.
func (s *ring) set(i int, p stackPixel) {
	s.slots[i] = p
}

// at returns the pixel at slot i.
func (s *ring) at(i int) stackPixel {
	return s.slots[i]
}

// replace swaps the oldest pixel for p, advances head and returns the
// pixel that left the window.
func (s *ring) replace(p stackPixel) stackPixel {
	old := s.slots[s.head]
	s.slots[s.head] = p
	s.head++
	if s.head == len(s.slots) {
		s.head = 0
	}
	return old
}
