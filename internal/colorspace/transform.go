package colorspace

import (
	"fmt"
	"regexp"
)

const (
	// DefaultContrastAmount is the shade percentage Contrast applies.
	DefaultContrastAmount = 40

	// lightThreshold is the perceived luminance above which a color is
	// treated as light.
	lightThreshold = 186
)

var sixDigitHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Opacity returns color with its alpha set to opacity (0-100, clamped).
//
// Hex colors become "rgba(...)". rgb() and hsl() gain an alpha term and become
// rgba() and hsla(); rgba() and hsla() have their alpha replaced. The output
// is re-serialized from the parsed channels, so spacing is normalized:
//
//	Opacity("rgba(255,0,0,0.8)", 50) // "rgba(255, 0, 0, 0.5)"
//
// Strings in any other notation are returned unchanged.
func Opacity(color string, opacity float64) string {
	alpha := clamp(opacity, 0, 100)

	switch DetectFormat(color) {
	case FormatHex:
		if c, err := HexToRGB(color); err == nil {
			return rgbaString(c, alpha)
		}
	case FormatRGB:
		if c, err := ParseRGBString(color); err == nil {
			return rgbaString(c, alpha)
		}
	case FormatRGBA:
		if c, err := ParseRGBAString(color); err == nil {
			return rgbaString(c.RGB(), alpha)
		}
	case FormatHSL:
		if c, err := ParseHSLString(color); err == nil {
			return hslaString(c, alpha)
		}
	case FormatHSLA:
		if c, err := ParseHSLAString(color); err == nil {
			return hslaString(c.HSL(), alpha)
		}
	}
	return color
}

// Darken scales each channel of a 6-digit hex color by (100-amount)/100 and
// returns the result as "rgb(r, g, b)". amount is clamped to 0-100.
// Any other input is returned unchanged.
func Darken(color string, amount float64) string {
	if !sixDigitHexPattern.MatchString(color) {
		return color
	}
	c, err := HexToRGB(color)
	if err != nil {
		return color
	}
	return DarkenRGB(c, amount).String()
}

// DarkenRGB scales each channel by (100-amount)/100 with amount clamped to
// 0-100.
func DarkenRGB(c RGB, amount float64) RGB {
	factor := (100 - clamp(amount, 0, 100)) / 100
	return RGB{
		R: roundInt(float64(c.R) * factor),
		G: roundInt(float64(c.G) * factor),
		B: roundInt(float64(c.B) * factor),
	}
}

// Shade moves a hex color toward black (negative percent) or white
// (positive percent) and returns a 6-digit hex string. Zero leaves the
// channels untouched.
func Shade(color string, percent float64) (string, error) {
	c, err := HexToRGB(color)
	if err != nil {
		return "", err
	}
	c = ShadeRGB(c, percent)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// ShadeRGB applies the Shade formula to each channel. The result is always
// within 0-255.
func ShadeRGB(c RGB, percent float64) RGB {
	return RGB{
		R: shadeChannel(c.R, percent),
		G: shadeChannel(c.G, percent),
		B: shadeChannel(c.B, percent),
	}
}

func shadeChannel(ch int, percent float64) int {
	v := float64(ch)
	switch {
	case percent < 0:
		v = v * (100 + percent) / 100
	case percent > 0:
		v += (255 - v) * percent / 100
	}
	return roundInt(clamp(v, 0, 255))
}

// Contrast shades a hex color by DefaultContrastAmount away from its own
// brightness: light colors get darker, dark colors get lighter.
func Contrast(color string) (string, error) {
	return ContrastBy(color, DefaultContrastAmount)
}

// ContrastBy is Contrast with an explicit shade amount.
func ContrastBy(color string, amount float64) (string, error) {
	c, err := HexToRGB(color)
	if err != nil {
		return "", err
	}
	if IsLight(c) {
		return Shade(color, -amount)
	}
	return Shade(color, amount)
}

// Luminance returns the perceived luminance 0.299R + 0.587G + 0.114B.
func Luminance(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// IsLight reports whether the perceived luminance of c exceeds 186.
func IsLight(c RGB) bool {
	return Luminance(c) > lightThreshold
}
