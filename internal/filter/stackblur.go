package filter

// stackBlur applies a single pass of triangular-weighted blur. Pixel i
// steps from the center is weighted radius+1-|i|, so the kernel
// approximates a Gaussian in one pass. The iteration count is ignored.
//
// The weighted sum is maintained from two running sums: pixels entering
// the right half of the window and pixels leaving the left half.
func stackBlur(pix []uint8, width, height, radius, _ int, n int) {
	div := radius + radius + 1
	div2 := (radius + 1) * (radius + 1)
	stack := newRing(div)

	var line []int
	if width > height {
		line = make([]int, width*n)
	} else {
		line = make([]int, height*n)
	}

	// Rows.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			copyChannels(line[x*n:], pix[(y*width+x)*4:], n)
		}
		stackBlurLine(line[:width*n], width, radius, div2, n, stack)
		for x := 0; x < width; x++ {
			storeChannels(pix[(y*width+x)*4:], line[x*n:], n)
		}
	}

	// Columns.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			copyChannels(line[y*n:], pix[(y*width+x)*4:], n)
		}
		stackBlurLine(line[:height*n], height, radius, div2, n, stack)
		for y := 0; y < height; y++ {
			storeChannels(pix[(y*width+x)*4:], line[y*n:], n)
		}
	}
}

// stackBlurLine blurs one row or column of length pixels in place.
func stackBlurLine(line []int, length, radius, div2, n int, stack *ring) {
	last := length - 1
	div := radius + radius + 1
	get := func(i int) stackPixel {
		i = max(0, min(i, last))
		return loadChannels(line[i*n:], n)
	}

	var sum, inSum, outSum stackPixel
	for i := -radius; i <= radius; i++ {
		p := get(i)
		stack.set(i+radius, p)
		w := radius + 1 - abs(i)
		sum = addPixel(sum, scalePixel(p, w))
		if i > 0 {
			inSum = addPixel(inSum, p)
		} else {
			outSum = addPixel(outSum, p)
		}
	}

	sp := radius
	for x := 0; x < length; x++ {
		out := stackPixel{r: sum.r / div2, g: sum.g / div2, b: sum.b / div2, a: sum.a / div2}

		sum = subPixel(sum, outSum)
		start := (sp - radius + div) % div
		outSum = subPixel(outSum, stack.at(start))

		p := get(x + radius + 1)
		stack.set(start, p)
		inSum = addPixel(inSum, p)
		sum = addPixel(sum, inSum)

		sp = (sp + 1) % div
		cur := stack.at(sp)
		outSum = addPixel(outSum, cur)
		inSum = subPixel(inSum, cur)

		writeChannels(line[x*n:], out, n)
	}
}

func addPixel(a, b stackPixel) stackPixel {
	return stackPixel{a.r + b.r, a.g + b.g, a.b + b.b, a.a + b.a}
}

func subPixel(a, b stackPixel) stackPixel {
	return stackPixel{a.r - b.r, a.g - b.g, a.b - b.b, a.a - b.a}
}

func scalePixel(p stackPixel, w int) stackPixel {
	return stackPixel{p.r * w, p.g * w, p.b * w, p.a * w}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// copyChannels widens the first n bytes of src into dst.
func copyChannels(dst []int, src []uint8, n int) {
	for c := 0; c < n; c++ {
		dst[c] = int(src[c])
	}
}

// storeChannels narrows the first n values of src into dst.
func storeChannels(dst []uint8, src []int, n int) {
	for c := 0; c < n; c++ {
		dst[c] = uint8(src[c])
	}
}

func loadChannels(src []int, n int) stackPixel {
	p := stackPixel{r: src[0], g: src[1], b: src[2]}
	if n == 4 {
		p.a = src[3]
	}
	return p
}

func writeChannels(dst []int, p stackPixel, n int) {
	dst[0], dst[1], dst[2] = p.r, p.g, p.b
	if n == 4 {
		dst[3] = p.a
	}
}
