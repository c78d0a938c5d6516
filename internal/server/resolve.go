package server

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// resolveColor parses any color notation a tool accepts into an RGBA with
// alpha on the 0-100 scale. Functional notations are tried first, then hex,
// then CSS/SVG color names (case-insensitive).
func resolveColor(s string) (colorspace.RGBA, colorspace.Format, error) {
	s = strings.TrimSpace(s)

	switch f := colorspace.DetectFormat(s); f {
	case colorspace.FormatRGB:
		c, err := colorspace.ParseRGBString(s)
		return c.WithAlpha(100), f, err
	case colorspace.FormatRGBA:
		c, err := colorspace.ParseRGBAString(s)
		return c, f, err
	case colorspace.FormatHSL:
		c, err := colorspace.ParseHSLString(s)
		if err != nil {
			return colorspace.RGBA{}, f, err
		}
		return colorspace.HSLAToRGBA(c.H, c.S, c.L, 100), f, nil
	case colorspace.FormatHSLA:
		c, err := colorspace.ParseHSLAString(s)
		if err != nil {
			return colorspace.RGBA{}, f, err
		}
		return colorspace.HSLAToRGBA(c.H, c.S, c.L, c.A), f, nil
	}

	// DetectFormat only knows 3- and 6-digit hex; HexToRGBA also takes the
	// 8-digit form and a missing '#'.
	if c, err := colorspace.HexToRGBA(s); err == nil {
		return c, colorspace.FormatHex, nil
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		c := colorspace.RGBA{R: int(named.R), G: int(named.G), B: int(named.B), A: 100}
		return c, colorspace.FormatUnknown, nil
	}

	return colorspace.RGBA{}, colorspace.FormatUnknown, fmt.Errorf("%w: %q", colorspace.ErrInvalidColor, s)
}
