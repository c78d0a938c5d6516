package server

import (
	"errors"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		input      string
		want       colorspace.RGBA
		wantFormat colorspace.Format
	}{
		{"#0f0", colorspace.RGBA{G: 255, A: 100}, colorspace.FormatHex},
		{"00ff00", colorspace.RGBA{G: 255, A: 100}, colorspace.FormatHex},
		{"#00ff0000", colorspace.RGBA{G: 255, A: 0}, colorspace.FormatHex},
		{"RGB(1, 2, 3)", colorspace.RGBA{R: 1, G: 2, B: 3, A: 100}, colorspace.FormatRGB},
		{"rgba(1,2,3,0.4)", colorspace.RGBA{R: 1, G: 2, B: 3, A: 40}, colorspace.FormatRGBA},
		{"hsl(120, 100%, 50%)", colorspace.RGBA{G: 255, A: 100}, colorspace.FormatHSL},
		{"hsla(240, 100%, 50%, 0.3)", colorspace.RGBA{B: 255, A: 30}, colorspace.FormatHSLA},
		{"Navy", colorspace.RGBA{B: 128, A: 100}, colorspace.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, format, err := resolveColor(tt.input)
			if err != nil {
				t.Fatalf("resolveColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("color: got %+v, want %+v", got, tt.want)
			}
			if format != tt.wantFormat {
				t.Errorf("format: got %s, want %s", format, tt.wantFormat)
			}
		})
	}
}

func TestResolveColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "#gggggg", "rgb(1,2)", "hsl(1, 2%)", "not-a-color"} {
		if _, _, err := resolveColor(input); !errors.Is(err, colorspace.ErrInvalidColor) {
			t.Errorf("resolveColor(%q): got %v, want ErrInvalidColor", input, err)
		}
	}
}
