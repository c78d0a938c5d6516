package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// TransformResult contains an image produced by a per-pixel color transform.
type TransformResult struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Operation   string  `json:"operation"`
	Amount      float64 `json:"amount"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

// ShadeImage applies colorspace.ShadeRGB to every pixel: negative percent
// moves toward black, positive toward white. Alpha is preserved.
func ShadeImage(img image.Image, percent float64) (*TransformResult, error) {
	return transformImage(img, "shade", percent, func(c colorspace.RGB) colorspace.RGB {
		return colorspace.ShadeRGB(c, percent)
	})
}

// DarkenImage applies colorspace.DarkenRGB to every pixel. amount is clamped
// to 0-100. Alpha is preserved.
func DarkenImage(img image.Image, amount float64) (*TransformResult, error) {
	return transformImage(img, "darken", amount, func(c colorspace.RGB) colorspace.RGB {
		return colorspace.DarkenRGB(c, amount)
	})
}

func transformImage(img image.Image, op string, amount float64, fn func(colorspace.RGB) colorspace.RGB) (*TransformResult, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("cannot %s an empty image", op)
	}

	// bild hands over premultiplied pixels; the engine works on straight
	// color, so un-premultiply around the call.
	out := adjust.Apply(img, func(px color.RGBA) color.RGBA {
		if px.A == 0 {
			return px
		}
		a := int(px.A)
		c := fn(colorspace.RGB{
			R: int(px.R) * 255 / a,
			G: int(px.G) * 255 / a,
			B: int(px.B) * 255 / a,
		})
		return color.RGBA{
			R: uint8(clampChannel(c.R) * a / 255),
			G: uint8(clampChannel(c.G) * a / 255),
			B: uint8(clampChannel(c.B) * a / 255),
			A: px.A,
		}
	})

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &TransformResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Operation:   op,
		Amount:      amount,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func clampChannel(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}
