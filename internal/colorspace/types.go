package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidHex is wrapped by every error returned for a malformed hex color.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrInvalidColor is wrapped by errors from the functional-notation
	// parsers (rgb(), rgba(), hsl(), hsla()).
	ErrInvalidColor = errors.New("invalid color string")
)

// RGB represents a color as red, green and blue channels.
//
// Channels are nominally 0-255. They are plain ints so that out-of-range
// values survive arithmetic instead of wrapping around.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// RGBA is an RGB color with an alpha channel on the 0-100 scale.
type RGBA struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
	A int `json:"a"` // Alpha: 0 = transparent, 100 = opaque
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// Values produced by RGBToHSL carry integral H and S, while L keeps its
// fractional part.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent
	L float64 `json:"l"` // Lightness: 0-100 percent
}

// HSLA is an HSL color with an alpha channel on the 0-100 scale.
type HSLA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A int     `json:"a"`
}

// CMYK represents a color as cyan, magenta, yellow and black (key) channels.
//
// Functions taking CMYK channels as arguments expect percentages (0-100).
// RGBToCMYK and the functions composed from it return fractions (0-1).
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// String formats the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// WithAlpha attaches an alpha channel (0-100) to the color.
func (c RGB) WithAlpha(a int) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// String formats the color as "rgba(r, g, b, a)" with alpha printed as a/100.
func (c RGBA) String() string {
	return rgbaString(c.RGB(), float64(c.A))
}

// String formats the color as "hsl(h, s%, l%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.L))
}

// WithAlpha attaches an alpha channel (0-100) to the color.
func (c HSL) WithAlpha(a int) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: a}
}

// HSL drops the alpha channel.
func (c HSLA) HSL() HSL {
	return HSL{H: c.H, S: c.S, L: c.L}
}

// String formats the color as "hsla(h, s%, l%, a)" with alpha printed as a/100.
func (c HSLA) String() string {
	return hslaString(c.HSL(), float64(c.A))
}

func rgbaString(c RGB, alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatNumber(alpha/100))
}

func hslaString(c HSL, alpha float64) string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
		formatNumber(c.H), formatNumber(c.S), formatNumber(c.L), formatNumber(alpha/100))
}

// formatNumber prints the shortest decimal that round-trips, with no exponent
// and no trailing zeros: 0.5, 100, 50.19607843137255.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
