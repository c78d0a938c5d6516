package colorspace

import "math"

// RGBToHSL converts RGB to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness (0 for achromatic colors)
//  5. Calculate Hue based on which component is max
//
// Hue and saturation are rounded to integers; lightness is not.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}

		switch hi {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		default:
			h = (rf-gf)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: math.Round(h * 360),
		S: math.Round(s * 100),
		L: l * 100,
	}
}

// RGBAToHSLA converts RGBA to HSLA. Alpha is passed through unchanged.
func RGBAToHSLA(r, g, b, a int) HSLA {
	return RGBToHSL(r, g, b).WithAlpha(a)
}

// HSLToRGB converts HSL (hue 0-360, saturation and lightness 0-100) to RGB.
func HSLToRGB(h, s, l float64) RGB {
	h, s, l = h/360, s/100, l/100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{R: roundInt(r * 255), G: roundInt(g * 255), B: roundInt(b * 255)}
}

// HSLAToRGBA converts HSLA to RGBA. Alpha is passed through unchanged.
func HSLAToRGBA(h, s, l float64, a int) RGBA {
	return HSLToRGB(h, s, l).WithAlpha(a)
}

// hueToRGB evaluates one channel of the HSL color wheel at position t.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// RGBToHSLString converts RGB to "hsl(h, s%, l%)".
func RGBToHSLString(r, g, b int) string {
	return RGBToHSL(r, g, b).String()
}

// RGBAToHSLAString converts RGBA to "hsla(h, s%, l%, a)" with alpha printed
// as a/100.
func RGBAToHSLAString(r, g, b, a int) string {
	return RGBAToHSLA(r, g, b, a).String()
}

// HSLToHex converts HSL to a "#rrggbb" string.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// HSLToCMYK converts HSL to CMYK on the 0-1 fractional scale.
func HSLToCMYK(h, s, l float64) CMYK {
	c := HSLToRGB(h, s, l)
	return RGBToCMYK(c.R, c.G, c.B)
}
