package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

const (
	// paletteMaxSide bounds the image DominantColors actually scans. Larger
	// inputs are downsampled first.
	paletteMaxSide = 256

	// quantizeStep groups channel values into buckets of this width.
	quantizeStep = 16

	// paletteMergeDistance is the CIEDE2000 distance under which two
	// quantized buckets are reported as one palette entry.
	paletteMergeDistance = 0.03
)

// ColorResult contains one color in every representation the engine offers.
type ColorResult struct {
	Hex        string          `json:"hex"`         // "#rrggbb", alpha excluded
	RGB        colorspace.RGB  `json:"rgb"`         // 0-255 channels
	RGBA       colorspace.RGBA `json:"rgba"`        // alpha on the 0-100 scale
	HSL        colorspace.HSL  `json:"hsl"`         // hue/saturation rounded, lightness fractional
	CMYK       colorspace.CMYK `json:"cmyk"`        // 0-1 fractions
	RGBString  string          `json:"rgb_string"`  // "rgb(r, g, b)"
	RGBAString string          `json:"rgba_string"` // "rgba(r, g, b, a)"
	HSLString  string          `json:"hsl_string"`  // "hsl(h, s%, l%)"
	HSLAString string          `json:"hsla_string"` // "hsla(h, s%, l%, a)"
	Luminance  float64         `json:"luminance"`   // 0.299R + 0.587G + 0.114B
	IsLight    bool            `json:"is_light"`    // luminance above 186
}

// Describe expands c into a ColorResult.
func Describe(c colorspace.RGBA) ColorResult {
	rgb := c.RGB()
	hsl := colorspace.RGBToHSL(rgb.R, rgb.G, rgb.B)

	return ColorResult{
		Hex:        rgb.Hex(),
		RGB:        rgb,
		RGBA:       c,
		HSL:        hsl,
		CMYK:       colorspace.RGBToCMYK(rgb.R, rgb.G, rgb.B),
		RGBString:  rgb.String(),
		RGBAString: c.String(),
		HSLString:  hsl.String(),
		HSLAString: hsl.WithAlpha(c.A).String(),
		Luminance:  colorspace.Luminance(rgb),
		IsLight:    colorspace.IsLight(rgb),
	}
}

// FromColor converts any color.Color to a non-premultiplied RGBA with alpha
// on the 0-100 scale.
func FromColor(c color.Color) colorspace.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorspace.RGBA{
		R: int(n.R),
		G: int(n.G),
		B: int(n.B),
		A: int(math.Round(float64(n.A) / 255 * 100)),
	}
}

// ToNRGBA converts an engine color to color.NRGBA, clamping every channel to
// its valid range.
func ToNRGBA(c colorspace.RGBA) color.NRGBA {
	return color.NRGBA{
		R: clampByte(float64(c.R)),
		G: clampByte(float64(c.G)),
		B: clampByte(float64(c.B)),
		A: clampByte(float64(c.A) / 100 * 255),
	}
}

func clampByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Returns an error if (x, y) is outside the image bounds. Valid coordinates
// run from 0 to width-1 and 0 to height-1.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	result := Describe(FromColor(img.At(x, y)))
	return &result, nil
}

// LabeledPoint is a pixel coordinate with an optional label that is echoed
// back in the result.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point in order. If any point is out of
// bounds the whole call fails and no partial result is returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
// (X1, Y1) is inclusive, (X2, Y2) is exclusive.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// subImage returns img cropped to region, or img itself when region is nil.
func subImage(img image.Image, region *Region) (image.Image, error) {
	if region == nil {
		return img, nil
	}

	bounds := img.Bounds()
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !region.Rect().In(bounds) {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, region.Rect()), nil
}

// ColorFrequency is a palette entry and its share of the analyzed pixels.
type ColorFrequency struct {
	Hex        string         `json:"hex"`        // quantized color "#rrggbb"
	Percentage float64        `json:"percentage"` // 0-100
	RGB        colorspace.RGB `json:"rgb"`
	HSL        colorspace.HSL `json:"hsl"`
}

// DominantColorsResult lists palette entries, most frequent first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts up to count of the most common colors in img, or
// in region when it is non-nil.
//
// Channels are quantized to multiples of 16 before counting, so #f0f0f0 and
// #fafafa share a bucket. Buckets that are still perceptually
// indistinguishable (CIEDE2000 below paletteMergeDistance) are folded into
// the more frequent one. Images larger than 256 pixels on a side are
// downsampled before counting, which keeps the cost bounded at the price of
// approximate percentages.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	src, err := subImage(img, region)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() > paletteMaxSide || bounds.Dy() > paletteMaxSide {
		src = imaging.Fit(src, paletteMaxSide, paletteMaxSide, imaging.Box)
		bounds = src.Bounds()
	}

	counts := make(map[colorspace.RGB]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := FromColor(src.At(x, y))
			key := colorspace.RGB{
				R: c.R / quantizeStep * quantizeStep,
				G: c.G / quantizeStep * quantizeStep,
				B: c.B / quantizeStep * quantizeStep,
			}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        c,
			HSL:        colorspace.RGBToHSL(c.R, c.G, c.B),
		})
	}
	sortByFrequency(colors)

	colors = mergeSimilar(colors, paletteMergeDistance)
	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// sortByFrequency orders entries by descending percentage; ties fall back to
// hex order so the output is deterministic.
func sortByFrequency(colors []ColorFrequency) {
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})
}

// mergeSimilar folds each entry into the first earlier entry closer than
// threshold (CIEDE2000). colors must already be sorted by frequency.
func mergeSimilar(colors []ColorFrequency, threshold float64) []ColorFrequency {
	out := make([]ColorFrequency, 0, len(colors))
	for _, c := range colors {
		lab := toColorful(c.RGB)
		merged := false
		for i := range out {
			if toColorful(out[i].RGB).DistanceCIEDE2000(lab) < threshold {
				out[i].Percentage += c.Percentage
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, c)
		}
	}
	sortByFrequency(out)
	return out
}

func toColorful(c colorspace.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ChannelStats holds one value per channel.
type ChannelStats struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"` // alpha on the 0-100 scale
}

// AverageColorResult is the mean color of an image or region.
type AverageColorResult struct {
	Color  ColorResult  `json:"color"`   // mean color, channels rounded
	Mean   ChannelStats `json:"mean"`    // unrounded channel means
	StdDev ChannelStats `json:"std_dev"` // sample standard deviation per channel
	Pixels int          `json:"pixels"`  // number of pixels analyzed
}

// AverageColor computes the mean color of img (or region) together with the
// per-channel standard deviation, a quick measure of how uniform the area is.
func AverageColor(img image.Image, region *Region) (*AverageColorResult, error) {
	src, err := subImage(img, region)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return nil, fmt.Errorf("cannot average an empty image")
	}

	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	as := make([]float64, 0, n)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := FromColor(src.At(x, y))
			rs = append(rs, float64(c.R))
			gs = append(gs, float64(c.G))
			bs = append(bs, float64(c.B))
			as = append(as, float64(c.A))
		}
	}

	var mean, std ChannelStats
	mean.R, std.R = stat.MeanStdDev(rs, nil)
	mean.G, std.G = stat.MeanStdDev(gs, nil)
	mean.B, std.B = stat.MeanStdDev(bs, nil)
	mean.A, std.A = stat.MeanStdDev(as, nil)
	if n < 2 {
		// The sample deviation of a single value is undefined (NaN).
		std = ChannelStats{}
	}

	avg := colorspace.RGBA{
		R: int(math.Round(mean.R)),
		G: int(math.Round(mean.G)),
		B: int(math.Round(mean.B)),
		A: int(math.Round(mean.A)),
	}

	return &AverageColorResult{
		Color:  Describe(avg),
		Mean:   mean,
		StdDev: std,
		Pixels: n,
	}, nil
}
