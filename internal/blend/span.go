package blend

// FillSpan blends a solid premultiplied color into a row of RGBA pixels.
//
// coverage holds one anti-aliasing value per pixel of dst. A nil coverage
// means full coverage. For partial coverage the blended result is
// interpolated with the untouched destination, so a destination-out span
// with coverage m yields D * (1 - Sa*m).
func FillSpan(mode Mode, dst []byte, sr, sg, sb, sa byte, coverage []byte) {
	fn := GetFunc(mode)
	n := len(dst) / 4
	for i := 0; i < n; i++ {
		m := byte(255)
		if coverage != nil {
			m = coverage[i]
			if m == 0 {
				continue
			}
		}
		j := i * 4
		dr, dg, db, da := dst[j], dst[j+1], dst[j+2], dst[j+3]
		r, g, b, a := fn(sr, sg, sb, sa, dr, dg, db, da)
		if m != 255 {
			r, g, b, a = lerp255(r, dr, m), lerp255(g, dg, m), lerp255(b, db, m), lerp255(a, da, m)
		}
		dst[j], dst[j+1], dst[j+2], dst[j+3] = r, g, b, a
	}
}

// CompositeSpan blends a row of premultiplied source pixels onto dst.
// src and dst must have the same length.
func CompositeSpan(mode Mode, dst, src []byte) {
	if mode == ModeSource {
		copy(dst, src)
		return
	}
	fn := GetFunc(mode)
	for j := 0; j+3 < len(dst) && j+3 < len(src); j += 4 {
		sa := src[j+3]
		if sa == 0 && mode == ModeSourceOver {
			continue
		}
		if sa == 255 && mode == ModeSourceOver {
			copy(dst[j:j+4], src[j:j+4])
			continue
		}
		dst[j], dst[j+1], dst[j+2], dst[j+3] = fn(src[j], src[j+1], src[j+2], sa,
			dst[j], dst[j+1], dst[j+2], dst[j+3])
	}
}
