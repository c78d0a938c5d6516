// Package imaging connects raster images to the colorspace engine.
//
// It samples pixel colors, extracts palettes and average colors from images
// or regions, compares regions perceptually, renders solid color swatches,
// and applies the engine's shade and darken transforms to every pixel of an
// image. All color values it
// reports are produced by package colorspace, so a sampled pixel prints the
// same hex, rgb(), hsl() and CMYK values as a direct conversion would.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X increases rightward, Y increases downward
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive
//
// # Color Representation
//
// ColorResult carries one color in every representation the engine knows:
//   - Hex: lowercase "#rrggbb" (alpha excluded)
//   - RGB / RGBA: 0-255 channels, alpha on the 0-100 scale
//   - HSL: hue 0-360, saturation 0-100, fractional lightness 0-100
//   - CMYK: 0-1 fractions, as returned by colorspace.RGBToCMYK
//
// # Output Images
//
// Rendered images (swatches, shaded images) are returned as base64 PNG data
// together with their dimensions and MIME type.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Every other function is stateless
// and may be called concurrently as long as the input image is not mutated.
package imaging
