// Package colorspace converts colors between RGB(A), HEX, HSL(A) and CMYK and
// implements a small set of CSS-oriented color transforms.
//
// Every function in this package is pure: values go in, fresh values come out,
// and no state is shared between calls. All functions are safe for concurrent
// use.
//
// # Scales
//
// Channel scales follow CSS conventions rather than normalized floats:
//   - Red, Green, Blue: 0-255
//   - Alpha: 0-100 (percent); string output prints alpha/100
//   - Hue: 0-360 degrees
//   - Saturation, Lightness: 0-100 (percent)
//   - Cyan, Magenta, Yellow, Black: 0-100 (percent) on input
//
// RGBToCMYK (and everything composed from it) returns CMYK on a 0-1
// fractional scale. Callers depend on that scale, so it stays as is.
//
// # Rounding
//
// RGB results are rounded to the nearest integer. RGBToHSL rounds hue and
// saturation but leaves lightness unrounded, so rgb(128,128,128) reports a
// lightness of 50.19607843137255 rather than 50.
//
// # Error Handling
//
// Only hex parsing can fail. HexToRGB, HexToSixDigit and everything built on
// them return an error wrapping ErrInvalidHex for malformed input. Numeric
// functions never validate their domain: out-of-range channels flow through
// the arithmetic unchanged. Transforms that receive a color string they do
// not understand return it untouched.
package colorspace
