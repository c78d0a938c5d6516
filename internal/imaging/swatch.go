package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// maxSwatchSide caps swatch dimensions so a single request cannot allocate
// an arbitrarily large image.
const maxSwatchSide = 2048

// SwatchResult contains a rendered solid-color image.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Hex         string `json:"hex"`
	RGBAString  string `json:"rgba_string"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch renders a width x height PNG filled with c. Channels outside
// their nominal range are clamped for drawing; Hex and RGBAString report c
// as given.
func RenderSwatch(c colorspace.RGBA, width, height int) (*SwatchResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", width, height)
	}
	if width > maxSwatchSide || height > maxSwatchSide {
		return nil, fmt.Errorf("swatch size %dx%d exceeds %dx%d", width, height, maxSwatchSide, maxSwatchSide)
	}

	img := imaging.New(width, height, ToNRGBA(c))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		Hex:         c.RGB().Hex(),
		RGBAString:  c.String(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
