// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion and
// image color analysis through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Conversion:
//   - color_convert: Any notation or CSS name to hex, RGB(A), HSL(A) and CMYK
//   - color_extract: Find color tokens in text
//
// Color Transforms:
//   - color_opacity: Set alpha, keeping the notation family
//   - color_darken: Scale channels toward black
//   - color_shade: Shade toward black or white
//   - color_contrast: Contrasting shade for text or borders
//   - color_mix: Blend two colors in L*a*b*
//   - color_distance: CIEDE2000 distance between two colors
//   - color_swatch: Render a solid-color PNG
//
// Image Color Operations:
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette
//   - image_average_color: Mean color and spread of an area
//   - image_shade: Shade every pixel
//   - image_darken: Darken every pixel
//   - image_compare_regions: Perceptual difference between two regions
//
// Cache Management:
//   - image_cache_clear: Drop one or all cached images
//
// # Color Arguments
//
// Tools that take a "color" accept hex (#rgb, #rrggbb, #rrggbbaa, with or
// without '#'), rgb(), rgba(), hsl(), hsla() and the CSS/SVG named colors.
// The transform tools color_opacity, color_darken, color_shade and
// color_contrast take the notations their underlying operation defines and
// nothing else.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls until image_cache_clear
// drops them, so a file changed on disk is only re-read after eviction.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
