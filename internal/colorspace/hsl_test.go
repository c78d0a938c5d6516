package colorspace

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    HSL
	}{
		{"red", 255, 0, 0, HSL{0, 100, 50}},
		{"green", 0, 255, 0, HSL{120, 100, 50}},
		{"blue", 0, 0, 255, HSL{240, 100, 50}},
		{"black", 0, 0, 0, HSL{0, 0, 0}},
		{"white", 255, 255, 255, HSL{0, 0, 100}},
		{"gray", 128, 128, 128, HSL{0, 0, 50.19607843137255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.r, tt.g, tt.b)
			if got.H != tt.want.H || got.S != tt.want.S || math.Abs(got.L-tt.want.L) > epsilon {
				t.Errorf("RGBToHSL(%d,%d,%d): got %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL_Rounding(t *testing.T) {
	// Hue and saturation are whole numbers, lightness keeps its fraction.
	got := RGBToHSL(255, 128, 64)
	if got.H != math.Round(got.H) {
		t.Errorf("hue not rounded: %v", got.H)
	}
	if got.S != math.Round(got.S) {
		t.Errorf("saturation not rounded: %v", got.S)
	}
	if got.L == math.Round(got.L) {
		t.Errorf("lightness unexpectedly integral: %v", got.L)
	}

	gray := RGBToHSL(128, 128, 128)
	if gray.L == 50 {
		t.Error("gray lightness should be 50.196..., not 50")
	}
}

func TestRGBToHSL_HueRoundsUpTo360(t *testing.T) {
	// 359.76 degrees rounds to 360 and is not wrapped to 0.
	got := RGBToHSL(255, 0, 1)
	if got.H != 360 {
		t.Errorf("hue: got %v, want 360", got.H)
	}
	if s := RGBToHSLString(255, 0, 1); s != "hsl(360, 100%, 50%)" {
		t.Errorf("string: got %s", s)
	}
	if back := HSLToRGB(got.H, got.S, got.L); back != (RGB{R: 255}) {
		t.Errorf("hue 360 should convert like hue 0, got %+v", back)
	}
}

func TestRGBToHSL_MatchesColorful(t *testing.T) {
	colors := []RGB{
		{255, 128, 64},
		{12, 200, 90},
		{33, 33, 200},
		{240, 240, 10},
		{90, 20, 160},
		{200, 100, 150},
	}

	for _, c := range colors {
		t.Run(c.Hex(), func(t *testing.T) {
			got := RGBToHSL(c.R, c.G, c.B)
			h, s, l := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsl()

			if math.Abs(got.H-h) > 0.5 {
				t.Errorf("H: got %v, colorful %v", got.H, h)
			}
			if math.Abs(got.S-s*100) > 0.5 {
				t.Errorf("S: got %v, colorful %v", got.S, s*100)
			}
			if math.Abs(got.L-l*100) > 1e-6 {
				t.Errorf("L: got %v, colorful %v", got.L, l*100)
			}
		})
	}
}

func TestRGBAToHSLA(t *testing.T) {
	got := RGBAToHSLA(255, 0, 0, 40)
	want := HSLA{H: 0, S: 100, L: 50, A: 40}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 100, 50, RGB{255, 0, 0}},
		{"green", 120, 100, 50, RGB{0, 255, 0}},
		{"blue", 240, 100, 50, RGB{0, 0, 255}},
		{"black", 0, 0, 0, RGB{0, 0, 0}},
		{"white", 0, 0, 100, RGB{255, 255, 255}},
		{"gray", 0, 0, 50, RGB{128, 128, 128}},
		{"steel", 210, 60, 45, RGB{46, 115, 184}},
		{"orange", 30, 80, 60, RGB{235, 153, 71}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToRGB(%v,%v,%v): got %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSLAToRGBA(t *testing.T) {
	got := HSLAToRGBA(120, 100, 50, 25)
	want := RGBA{R: 0, G: 255, B: 0, A: 25}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	tests := []HSL{
		{0, 100, 50},
		{120, 100, 50},
		{210, 60, 45},
		{30, 80, 60},
	}

	for _, tt := range tests {
		t.Run(tt.String(), func(t *testing.T) {
			got, err := HexToHSL(HSLToHex(tt.H, tt.S, tt.L))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got.H-tt.H) > 1 || math.Abs(got.S-tt.S) > 1 || math.Abs(got.L-tt.L) > 1 {
				t.Errorf("round trip: got %+v, want %+v (+/-1)", got, tt)
			}
		})
	}
}

func TestRGBToHSLString(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    string
	}{
		{"red", 255, 0, 0, "hsl(0, 100%, 50%)"},
		{"black", 0, 0, 0, "hsl(0, 0%, 0%)"},
		{"white", 255, 255, 255, "hsl(0, 0%, 100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHSLString(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBAToHSLAString(t *testing.T) {
	if got := RGBAToHSLAString(255, 0, 0, 50); got != "hsla(0, 100%, 50%, 0.5)" {
		t.Errorf("got %s, want hsla(0, 100%%, 50%%, 0.5)", got)
	}
	if got := RGBAToHSLAString(128, 128, 128, 0); got != "hsla(0, 0%, 50.19607843137255%, 0)" {
		t.Errorf("got %s, want hsla(0, 0%%, 50.19607843137255%%, 0)", got)
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 100, 50, "#ff0000"},
		{120, 100, 50, "#00ff00"},
		{240, 100, 50, "#0000ff"},
		{0, 0, 0, "#000000"},
		{0, 0, 100, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := HSLToHex(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHSLToCMYK(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    CMYK
	}{
		{0, 100, 50, CMYK{0, 1, 1, 0}},
		{120, 100, 50, CMYK{1, 0, 1, 0}},
		{240, 100, 50, CMYK{1, 1, 0, 0}},
		{0, 0, 0, CMYK{0, 0, 0, 1}},
		{0, 0, 100, CMYK{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		assertCMYK(t, HSLToCMYK(tt.h, tt.s, tt.l), tt.want)
	}
}
