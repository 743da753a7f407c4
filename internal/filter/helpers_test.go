package filter

import "math/rand/v2"

// Test helper functions shared across filter tests.

// uniformBuffer returns a w*h RGBA buffer where every pixel is (r, g, b, a).
func uniformBuffer(w, h int, r, g, b, a uint8) []uint8 {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

// noiseBuffer returns a deterministic pseudo-random RGBA buffer.
func noiseBuffer(w, h int, seed uint64, opaque bool) []uint8 {
	rng := rand.New(rand.NewPCG(seed, seed*31+7))
	pix := make([]uint8, w*h*4)
	for i := range pix {
		pix[i] = uint8(rng.IntN(256))
		if opaque && i%4 == 3 {
			pix[i] = 255
		}
	}
	return pix
}

func clone(pix []uint8) []uint8 {
	out := make([]uint8, len(pix))
	copy(out, pix)
	return out
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}

// naiveStackBox recomputes the stack box blur by summing the full window
// for every pixel. It shares the reciprocal tables with the real filter.
func naiveStackBox(src []uint8, w, h, radius, iterations int, alpha bool) []uint8 {
	pix := clone(src)
	avg := func(sum int) int { return int((uint32(sum) * mulTable[radius]) >> shgTable[radius]) }
	channels := 3
	if alpha {
		channels = 4
	}
	for ; iterations > 0; iterations-- {
		tmp := clone(pix)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for c := 0; c < channels; c++ {
					sum := 0
					for i := -radius; i <= radius; i++ {
						sum += int(pix[(y*w+clampIndex(x+i, w))*4+c])
					}
					tmp[(y*w+x)*4+c] = uint8(avg(sum))
				}
			}
		}
		out := clone(tmp)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var sums [4]int
				for c := 0; c < channels; c++ {
					for i := -radius; i <= radius; i++ {
						sums[c] += int(tmp[(clampIndex(y+i, h)*w+x)*4+c])
					}
				}
				p := (y*w + x) * 4
				if !alpha {
					for c := 0; c < 3; c++ {
						out[p+c] = uint8(avg(sums[c]))
					}
					continue
				}
				pa := avg(sums[3])
				out[p+3] = uint8(pa)
				for c := 0; c < 3; c++ {
					if pa > 0 {
						out[p+c] = clampRound(float64(avg(sums[c])) * (255 / float64(pa)))
					} else {
						out[p+c] = 0
					}
				}
			}
		}
		pix = out
	}
	return pix
}

// naiveStackBlur convolves rows then columns with the triangular kernel.
func naiveStackBlur(src []uint8, w, h, radius, channels int) []uint8 {
	div2 := (radius + 1) * (radius + 1)
	tmp := clone(src)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				sum := 0
				for i := -radius; i <= radius; i++ {
					sum += int(src[(y*w+clampIndex(x+i, w))*4+c]) * (radius + 1 - abs(i))
				}
				tmp[(y*w+x)*4+c] = uint8(sum / div2)
			}
		}
	}
	out := clone(tmp)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				sum := 0
				for i := -radius; i <= radius; i++ {
					sum += int(tmp[(clampIndex(y+i, h)*w+x)*4+c]) * (radius + 1 - abs(i))
				}
				out[(y*w+x)*4+c] = uint8(sum / div2)
			}
		}
	}
	return out
}

// naiveBox applies an edge-replicated box filter with floor division.
func naiveBox(src []uint8, w, h, radius, iterations, channels int) []uint8 {
	div := 2*radius + 1
	pix := clone(src)
	for ; iterations > 0; iterations-- {
		tmp := clone(pix)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for c := 0; c < channels; c++ {
					sum := 0
					for i := -radius; i <= radius; i++ {
						sum += int(pix[(y*w+clampIndex(x+i, w))*4+c])
					}
					tmp[(y*w+x)*4+c] = uint8(sum / div)
				}
			}
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for c := 0; c < channels; c++ {
					sum := 0
					for i := -radius; i <= radius; i++ {
						sum += int(tmp[(clampIndex(y+i, h)*w+x)*4+c])
					}
					pix[(y*w+x)*4+c] = uint8(sum / div)
				}
			}
		}
	}
	return pix
}

// naiveIntegral averages over the window clipped to the image.
func naiveIntegral(src []uint8, w, h, radius, iterations, channels int) []uint8 {
	pix := clone(src)
	for ; iterations > 0; iterations-- {
		out := clone(pix)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for c := 0; c < channels; c++ {
					sum, area := 0, 0
					for yy := max(0, y-radius); yy <= min(h-1, y+radius); yy++ {
						for xx := max(0, x-radius); xx <= min(w-1, x+radius); xx++ {
							sum += int(pix[(yy*w+xx)*4+c])
							area++
						}
					}
					out[(y*w+x)*4+c] = uint8(sum / area)
				}
			}
		}
		pix = out
	}
	return pix
}
