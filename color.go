package gaussbg

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseColor parses a CSS-style color string into a straight-alpha color.
//
// Supported formats: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the leading
// '#' is optional), "rgb(r, g, b)" and "rgba(r, g, b, a)" with r, g, b in
// [0, 255] and a in [0, 1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	var (
		c   color.NRGBA
		err error
	)
	switch {
	case strings.HasPrefix(lower, "rgba("):
		c, err = parseFunctional(lower[len("rgba("):], 4)
	case strings.HasPrefix(lower, "rgb("):
		c, err = parseFunctional(lower[len("rgb("):], 3)
	default:
		c, err = parseHexColor(strings.TrimPrefix(s, "#"))
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return c, nil
}

func parseHexColor(hex string) (color.NRGBA, error) {
	var r, g, b uint32
	a := uint32(255)

	var err error
	switch len(hex) {
	case 3: // RGB
		err = parseHex(hex, 1, &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		err = parseHex(hex, 1, &r, &g, &b, &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		err = parseHex(hex, 2, &r, &g, &b)
	case 8: // RRGGBBAA
		err = parseHex(hex, 2, &r, &g, &b, &a)
	default:
		return color.NRGBA{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits, got %d", len(hex))
	}
	if err != nil {
		return color.NRGBA{}, err
	}

	//nolint:gosec // G115: safe - every component is at most 255
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex reads consecutive groups of width hex digits into vals.
func parseHex(s string, width int, vals ...*uint32) error {
	for i, val := range vals {
		*val = 0
		for _, c := range []byte(s[i*width : (i+1)*width]) {
			*val *= 16
			switch {
			case '0' <= c && c <= '9':
				*val += uint32(c - '0')
			case 'a' <= c && c <= 'f':
				*val += uint32(c - 'a' + 10)
			case 'A' <= c && c <= 'F':
				*val += uint32(c - 'A' + 10)
			default:
				return fmt.Errorf("invalid hex digit %q", c)
			}
		}
	}
	return nil
}

// parseFunctional parses the argument list of rgb() or rgba(), starting
// after the opening parenthesis.
func parseFunctional(args string, n int) (color.NRGBA, error) {
	body, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("missing closing parenthesis")
	}
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("want %d components, got %d", n, len(parts))
	}

	var comps [4]float64
	comps[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return color.NRGBA{}, fmt.Errorf("invalid component %q", strings.TrimSpace(p))
		}
		comps[i] = v
	}

	return color.NRGBA{
		R: clampByte(comps[0]),
		G: clampByte(comps[1]),
		B: clampByte(comps[2]),
		A: clampByte(comps[3] * 255),
	}, nil
}

// clampByte rounds v to the nearest integer in [0, 255].
func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
