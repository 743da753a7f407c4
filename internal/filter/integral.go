package filter

// integralBlur averages each pixel over its (2*radius+1)^2 neighborhood
// using a summed-area table per channel. The window is clipped to the
// image and the average is taken over the clipped area, so edges are not
// darkened.
func integralBlur(pix []uint8, width, height, radius, iterations, n int) {
	stride := width + 1
	table := make([]uint64, stride*(height+1)*n)

	for ; iterations > 0; iterations-- {
		for y := 0; y < height; y++ {
			var row [4]uint64
			for x := 0; x < width; x++ {
				p := (y*width + x) * 4
				above := (y*stride + x + 1) * n
				here := ((y+1)*stride + x + 1) * n
				for c := 0; c < n; c++ {
					row[c] += uint64(pix[p+c])
					table[here+c] = table[above+c] + row[c]
				}
			}
		}

		for y := 0; y < height; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius+1, height)
			for x := 0; x < width; x++ {
				x0 := max(x-radius, 0)
				x1 := min(x+radius+1, width)
				area := uint64((x1 - x0) * (y1 - y0))

				a := (y0*stride + x0) * n
				b := (y0*stride + x1) * n
				c0 := (y1*stride + x0) * n
				d := (y1*stride + x1) * n
				p := (y*width + x) * 4
				for c := 0; c < n; c++ {
					sum := table[d+c] + table[a+c] - table[b+c] - table[c0+c]
					pix[p+c] = uint8(sum / area)
				}
			}
		}
	}
}
