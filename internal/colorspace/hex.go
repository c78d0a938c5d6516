package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	hexPattern      = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	shortHexPattern = regexp.MustCompile(`^#?([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
)

// RGBToHex packs the channels as (r<<16)|(g<<8)|b and formats the result as
// a lowercase, zero-padded "#rrggbb" string.
//
// Out-of-range channels are not clamped. The packed value is printed as-is,
// which may yield more than six digits or a minus sign.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%06x", (r<<16)|(g<<8)|b)
}

// HexToSixDigit expands a 3-digit hex color by doubling each digit:
// "#abc" becomes "#aabbcc". The leading '#' is optional on input and always
// present on output. Any other length is an error.
func HexToSixDigit(hex string) (string, error) {
	m := shortHexPattern.FindStringSubmatch(hex)
	if m == nil {
		return "", fmt.Errorf("%w: %q is not a 3 digit hex color", ErrInvalidHex, hex)
	}
	return "#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3], nil
}

// HexToRGBA parses a hex color into RGBA.
//
// Accepted forms, each with or without a leading '#':
//   - 3 digits: "#f00", expanded by digit doubling
//   - 6 digits: "#ff0000"
//   - 8 digits: "#ff000080", the last byte being alpha
//
// The alpha byte is converted to the 0-100 scale as round(byte/255*100).
// Colors without an alpha byte are reported as fully opaque (A = 100).
func HexToRGBA(hex string) (RGBA, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, hex, err)
	}

	if len(digits) == 8 {
		return RGBA{
			R: int(v >> 24 & 0xff),
			G: int(v >> 16 & 0xff),
			B: int(v >> 8 & 0xff),
			A: int(math.Round(float64(v&0xff) / 255 * 100)),
		}, nil
	}

	return RGBA{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
		A: 100,
	}, nil
}

// HexToRGB parses a hex color into RGB, discarding any alpha byte.
// See HexToRGBA for the accepted forms.
func HexToRGB(hex string) (RGB, error) {
	c, err := HexToRGBA(hex)
	if err != nil {
		return RGB{}, err
	}
	return c.RGB(), nil
}

// HexToHSL converts a hex color to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c.R, c.G, c.B), nil
}

// HexToHSLA converts a hex color to HSLA, carrying the alpha byte through.
func HexToHSLA(hex string) (HSLA, error) {
	c, err := HexToRGBA(hex)
	if err != nil {
		return HSLA{}, err
	}
	return RGBAToHSLA(c.R, c.G, c.B, c.A), nil
}

// HexToCMYK converts a hex color to CMYK on the 0-1 fractional scale.
func HexToCMYK(hex string) (CMYK, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return CMYK{}, err
	}
	return RGBToCMYK(c.R, c.G, c.B), nil
}

// HexToRGBString converts a hex color to "rgb(r, g, b)".
func HexToRGBString(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// HexToRGBAString converts a hex color to "rgba(r, g, b, a)" using the given
// alpha (0-100) in place of any alpha byte in the input.
func HexToRGBAString(hex string, alpha int) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgbaString(c, float64(alpha)), nil
}
