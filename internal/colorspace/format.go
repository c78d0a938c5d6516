package colorspace

import (
	"fmt"
	"regexp"
	"strconv"
)

// Format identifies the notation of a color string.
type Format int

const (
	// FormatUnknown is any string no other format matches.
	FormatUnknown Format = iota
	// FormatHex is "#" followed by 3 or 6 hex digits.
	FormatHex
	// FormatRGB is "rgb(r, g, b)".
	FormatRGB
	// FormatRGBA is "rgba(r, g, b, a)" with a 0-1 alpha.
	FormatRGBA
	// FormatHSL is "hsl(h, s%, l%)".
	FormatHSL
	// FormatHSLA is "hsla(h, s%, l%, a)" with a 0-1 alpha.
	FormatHSLA
)

// String returns the lowercase notation name, e.g. "rgba".
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	case FormatHSL:
		return "hsl"
	case FormatHSLA:
		return "hsla"
	default:
		return "unknown"
	}
}

var (
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)
	rgbPattern      = regexp.MustCompile(`(?i)^rgb\((\d+),\s*(\d+),\s*(\d+)\)$`)
	rgbaPattern     = regexp.MustCompile(`(?i)^rgba\((\d+),\s*(\d+),\s*(\d+),\s*(\d+(?:\.\d+)?)\)$`)
	hslPattern      = regexp.MustCompile(`(?i)^hsl\((\d+),\s*(\d+)%?,\s*(\d+)%?\)$`)
	hslaPattern     = regexp.MustCompile(`(?i)^hsla\((\d+),\s*(\d+)%?,\s*(\d+)%?,\s*(\d+(?:\.\d+)?)\)$`)

	// colorTokenPattern finds color-looking tokens inside free text.
	colorTokenPattern = regexp.MustCompile(`(?i)(?:#|0x)(?:[a-f0-9]{6}|[a-f0-9]{3})\b|(?:rgb|hsl)a?\([^)]*\)`)
)

// DetectFormat reports which notation s is written in. Patterns are tried in
// the order hex, rgb, rgba, hsl, hsla. Hex here means "#" followed by exactly
// 3 or 6 digits.
func DetectFormat(s string) Format {
	switch {
	case hexColorPattern.MatchString(s):
		return FormatHex
	case rgbPattern.MatchString(s):
		return FormatRGB
	case rgbaPattern.MatchString(s):
		return FormatRGBA
	case hslPattern.MatchString(s):
		return FormatHSL
	case hslaPattern.MatchString(s):
		return FormatHSLA
	}
	return FormatUnknown
}

// FindColors returns every color-looking token in text, in order of
// appearance: "#abc", "#aabbcc", "0xaabbcc", and rgb()/rgba()/hsl()/hsla()
// calls. Tokens are returned verbatim and are not validated further.
func FindColors(text string) []string {
	return colorTokenPattern.FindAllString(text, -1)
}

// ParseRGBString parses "rgb(r, g, b)".
func ParseRGBString(s string) (RGB, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q is not rgb()", ErrInvalidColor, s)
	}
	ch, err := atoiAll(s, m[1:4])
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseRGBAString parses "rgba(r, g, b, a)" where a is a 0-1 fraction.
// The returned alpha is on the 0-100 scale.
func ParseRGBAString(s string) (RGBA, error) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return RGBA{}, fmt.Errorf("%w: %q is not rgba()", ErrInvalidColor, s)
	}
	ch, err := atoiAll(s, m[1:4])
	if err != nil {
		return RGBA{}, err
	}
	a, err := parseAlpha(s, m[4])
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

// ParseHSLString parses "hsl(h, s%, l%)". The percent signs are optional.
func ParseHSLString(s string) (HSL, error) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, fmt.Errorf("%w: %q is not hsl()", ErrInvalidColor, s)
	}
	ch, err := atoiAll(s, m[1:4])
	if err != nil {
		return HSL{}, err
	}
	return HSL{H: float64(ch[0]), S: float64(ch[1]), L: float64(ch[2])}, nil
}

// ParseHSLAString parses "hsla(h, s%, l%, a)" where a is a 0-1 fraction.
// The returned alpha is on the 0-100 scale.
func ParseHSLAString(s string) (HSLA, error) {
	m := hslaPattern.FindStringSubmatch(s)
	if m == nil {
		return HSLA{}, fmt.Errorf("%w: %q is not hsla()", ErrInvalidColor, s)
	}
	ch, err := atoiAll(s, m[1:4])
	if err != nil {
		return HSLA{}, err
	}
	a, err := parseAlpha(s, m[4])
	if err != nil {
		return HSLA{}, err
	}
	return HSLA{H: float64(ch[0]), S: float64(ch[1]), L: float64(ch[2]), A: a}, nil
}

func atoiAll(src string, fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidColor, src, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseAlpha(src, field string) (int, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, src, err)
	}
	return roundInt(v * 100), nil
}
