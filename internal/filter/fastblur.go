package filter

// fastBlur is a compound box blur. Each iteration runs a horizontal pass
// into a separate buffer and a vertical pass back into pix. The window sum
// is divided through a lookup table built once per call.
func fastBlur(pix []uint8, width, height, radius, iterations, n int) {
	div := radius + radius + 1
	widthMinus1 := width - 1
	heightMinus1 := height - 1

	dv := make([]uint8, 256*div)
	for i := range dv {
		dv[i] = uint8(i / div)
	}

	tmp := make([]uint8, width*height*4)
	vmin := make([]int, max(width, height))
	vmax := make([]int, max(width, height))

	for x := 0; x < width; x++ {
		vmin[x] = min(x+radius+1, widthMinus1)
		vmax[x] = max(x-radius, 0)
	}

	for ; iterations > 0; iterations-- {
		for y := 0; y < height; y++ {
			row := y * width
			var sum [4]int
			for i := -radius; i <= radius; i++ {
				p := (row + min(widthMinus1, max(i, 0))) * 4
				for c := 0; c < n; c++ {
					sum[c] += int(pix[p+c])
				}
			}
			for x := 0; x < width; x++ {
				o := (row + x) * 4
				for c := 0; c < n; c++ {
					tmp[o+c] = dv[sum[c]]
				}
				p1 := (row + vmin[x]) * 4
				p2 := (row + vmax[x]) * 4
				for c := 0; c < n; c++ {
					sum[c] += int(pix[p1+c]) - int(pix[p2+c])
				}
			}
		}

		for y := 0; y < height; y++ {
			vmin[y] = min(y+radius+1, heightMinus1) * width
			vmax[y] = max(y-radius, 0) * width
		}
		for x := 0; x < width; x++ {
			var sum [4]int
			for i := -radius; i <= radius; i++ {
				p := (min(heightMinus1, max(i, 0))*width + x) * 4
				for c := 0; c < n; c++ {
					sum[c] += int(tmp[p+c])
				}
			}
			for y := 0; y < height; y++ {
				o := (y*width + x) * 4
				for c := 0; c < n; c++ {
					pix[o+c] = dv[sum[c]]
				}
				p1 := (x + vmin[y]) * 4
				p2 := (x + vmax[y]) * 4
				for c := 0; c < n; c++ {
					sum[c] += int(tmp[p1+c]) - int(tmp[p2+c])
				}
			}
		}

		for x := 0; x < width; x++ {
			vmin[x] = min(x+radius+1, widthMinus1)
			vmax[x] = max(x-radius, 0)
		}
	}
}
