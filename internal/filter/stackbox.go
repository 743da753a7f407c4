package filter

import "math"

// stackBoxBlurRGB blurs the color channels of pix with an iterated box
// filter of size 2*radius+1, leaving alpha untouched.
//
// Each pass keeps a running sum of the pixels inside the window. Moving
// the window one pixel subtracts the pixel leaving the ring and adds the
// one entering, so the cost per pixel does not depend on radius.
func stackBoxBlurRGB(pix []uint8, width, height, radius, iterations int) {
	stackBoxBlur(pix, width, height, radius, iterations, false)
}

// stackBoxBlurRGBA is stackBoxBlurRGB with the alpha channel blurred as
// well. After the vertical pass the averaged colors are divided by the
// averaged alpha; fully transparent results are forced to black.
func stackBoxBlurRGBA(pix []uint8, width, height, radius, iterations int) {
	stackBoxBlur(pix, width, height, radius, iterations, true)
}

func stackBoxBlur(pix []uint8, width, height, radius, iterations int, alpha bool) {
	div := radius + radius + 1
	widthMinus1 := width - 1
	heightMinus1 := height - 1
	radiusPlus1 := radius + 1

	mulSum := mulTable[radius]
	shgSum := shgTable[radius]
	avg := func(sum int) int {
		return int((uint32(sum) * mulSum) >> shgSum)
	}

	stack := newRing(div)

	for ; iterations > 0; iterations-- {
		// Horizontal pass.
		yw, yi := 0, 0
		for y := 0; y < height; y++ {
			first := readPixel(pix, yi, alpha)
			rSum := radiusPlus1 * first.r
			gSum := radiusPlus1 * first.g
			bSum := radiusPlus1 * first.b
			aSum := radiusPlus1 * first.a

			stack.reset()
			for i := 0; i < radiusPlus1; i++ {
				stack.set(i, first)
			}
			for i := 1; i < radiusPlus1; i++ {
				px := readPixel(pix, yi+(min(i, widthMinus1)<<2), alpha)
				stack.set(radius+i, px)
				rSum += px.r
				gSum += px.g
				bSum += px.b
				aSum += px.a
			}

			for x := 0; x < width; x++ {
				pix[yi] = uint8(avg(rSum))
				pix[yi+1] = uint8(avg(gSum))
				pix[yi+2] = uint8(avg(bSum))
				if alpha {
					pix[yi+3] = uint8(avg(aSum))
				}
				yi += 4

				in := readPixel(pix, (yw+min(x+radiusPlus1, widthMinus1))<<2, alpha)
				out := stack.replace(in)
				rSum += in.r - out.r
				gSum += in.g - out.g
				bSum += in.b - out.b
				aSum += in.a - out.a
			}
			yw += width
		}

		// Vertical pass.
		for x := 0; x < width; x++ {
			first := readPixel(pix, x<<2, alpha)
			rSum := radiusPlus1 * first.r
			gSum := radiusPlus1 * first.g
			bSum := radiusPlus1 * first.b
			aSum := radiusPlus1 * first.a

			stack.reset()
			for i := 0; i < radiusPlus1; i++ {
				stack.set(i, first)
			}
			for i := 1; i <= radius; i++ {
				px := readPixel(pix, (min(i, heightMinus1)*width+x)<<2, alpha)
				stack.set(radius+i, px)
				rSum += px.r
				gSum += px.g
				bSum += px.b
				aSum += px.a
			}

			yi = x
			for y := 0; y < height; y++ {
				p := yi << 2
				if alpha {
					pa := avg(aSum)
					pix[p+3] = uint8(pa)
					if pa > 0 {
						scale := 255 / float64(pa)
						pix[p] = clampRound(float64(avg(rSum)) * scale)
						pix[p+1] = clampRound(float64(avg(gSum)) * scale)
						pix[p+2] = clampRound(float64(avg(bSum)) * scale)
					} else {
						pix[p], pix[p+1], pix[p+2] = 0, 0, 0
					}
				} else {
					pix[p] = uint8(avg(rSum))
					pix[p+1] = uint8(avg(gSum))
					pix[p+2] = uint8(avg(bSum))
				}

				in := readPixel(pix, (x+min(y+radiusPlus1, heightMinus1)*width)<<2, alpha)
				out := stack.replace(in)
				rSum += in.r - out.r
				gSum += in.g - out.g
				bSum += in.b - out.b
				aSum += in.a - out.a

				yi += width
			}
		}
	}
}

// readPixel loads the pixel at byte offset p. Alpha is read only when it
// takes part in the blur.
func readPixel(pix []uint8, p int, alpha bool) stackPixel {
	px := stackPixel{r: int(pix[p]), g: int(pix[p+1]), b: int(pix[p+2])}
	if alpha {
		px.a = int(pix[p+3])
	}
	return px
}

// clampRound converts v to a byte the way a clamped 8-bit pixel store
// does: round half to even, then clamp to [0, 255].
func clampRound(v float64) uint8 {
	v = math.RoundToEven(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
