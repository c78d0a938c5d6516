package colorspace

import "math"

// CMYKToRGB converts CMYK percentages (0-100 each) to RGB.
//
// Each channel is 255 * (1-ink) * (1-black), rounded to the nearest integer.
// (0,0,0,0) is white and any color with 100% black is (0,0,0).
func CMYKToRGB(c, m, y, k float64) RGB {
	c, m, y, k = c/100, m/100, y/100, k/100
	return RGB{
		R: roundInt(255 * (1 - c) * (1 - k)),
		G: roundInt(255 * (1 - m) * (1 - k)),
		B: roundInt(255 * (1 - y) * (1 - k)),
	}
}

// RGBToCMYK converts RGB to CMYK.
//
// Unlike CMYKToRGB, the result is on a 0-1 fractional scale: pure red is
// {0, 1, 1, 0}. Black is {0, 0, 0, 1}.
func RGBToCMYK(r, g, b int) CMYK {
	if r == 0 && g == 0 && b == 0 {
		return CMYK{K: 1}
	}

	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	k := 1 - math.Max(rf, math.Max(gf, bf))
	if k == 1 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: (1 - rf - k) / (1 - k),
		M: (1 - gf - k) / (1 - k),
		Y: (1 - bf - k) / (1 - k),
		K: k,
	}
}

// CMYKToHex converts CMYK percentages to a "#rrggbb" string.
func CMYKToHex(c, m, y, k float64) string {
	return CMYKToRGB(c, m, y, k).Hex()
}

// CMYKToRGBString converts CMYK percentages to "rgb(r, g, b)".
func CMYKToRGBString(c, m, y, k float64) string {
	return CMYKToRGB(c, m, y, k).String()
}

// CMYKToRGBAString converts CMYK percentages to "rgba(r, g, b, a)" where a is
// alpha (0-100) printed as a fraction.
func CMYKToRGBAString(c, m, y, k float64, alpha int) string {
	return rgbaString(CMYKToRGB(c, m, y, k), float64(alpha))
}
