package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorArgDescription is shared by every tool that accepts a color string.
const colorArgDescription = "Color as hex (#rgb, #rrggbb, #rrggbbaa), rgb(), rgba(), hsl(), hsla() or a CSS color name"

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Conversion
		{
			Name:        "color_convert",
			Description: "Convert a color to every supported representation: hex, RGB, RGBA, HSL, HSLA and CMYK, plus perceived luminance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorArgDescription,
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_extract",
			Description: "Find every hex, rgb(), rgba(), hsl() and hsla() color token in a block of text, in order of appearance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text to scan, e.g. a CSS file",
					},
				},
				"required": []string{"text"},
			},
		},

		// Color Transforms
		{
			Name:        "color_opacity",
			Description: "Set the alpha of a hex, rgb(), rgba(), hsl() or hsla() color. Hex and rgb() become rgba(); hsl() becomes hsla(). Unrecognized strings are returned unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color string in hex, rgb(), rgba(), hsl() or hsla() notation",
					},
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Opacity from 0 (transparent) to 100 (opaque)",
					},
				},
				"required": []string{"color", "opacity"},
			},
		},
		{
			Name:        "color_darken",
			Description: "Scale each channel of a #rrggbb color by (100-amount)% and return rgb(). Other inputs are returned unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Six-digit hex color, e.g. #ff0000",
					},
					"amount": map[string]interface{}{
						"type":        "number",
						"description": "Percentage to darken by, 0-100",
					},
				},
				"required": []string{"color", "amount"},
			},
		},
		{
			Name:        "color_shade",
			Description: "Shade a hex color toward black (negative percent) or white (positive percent). Returns #rrggbb.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color",
					},
					"percent": map[string]interface{}{
						"type":        "number",
						"description": "Shade percentage, -100 to 100",
					},
				},
				"required": []string{"color", "percent"},
			},
		},
		{
			Name:        "color_contrast",
			Description: "Return a contrasting shade of a hex color: light colors are darkened, dark colors lightened.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color",
					},
					"amount": map[string]interface{}{
						"type":        "number",
						"description": "Shade amount in percent. Default 40",
						"default":     40,
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_mix",
			Description: "Blend two colors in CIE L*a*b* space. ratio 0 returns color1, 1 returns color2.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": map[string]interface{}{
						"type":        "string",
						"description": colorArgDescription,
					},
					"color2": map[string]interface{}{
						"type":        "string",
						"description": colorArgDescription,
					},
					"ratio": map[string]interface{}{
						"type":        "number",
						"description": "Blend ratio 0-1. Default 0.5",
						"default":     0.5,
					},
				},
				"required": []string{"color1", "color2"},
			},
		},
		{
			Name:        "color_distance",
			Description: "Perceptual CIEDE2000 distance between two colors, with the luminance of each and whether they are distinguishable.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": map[string]interface{}{
						"type":        "string",
						"description": colorArgDescription,
					},
					"color2": map[string]interface{}{
						"type":        "string",
						"description": colorArgDescription,
					},
				},
				"required": []string{"color1", "color2"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a solid-color PNG swatch and return it base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorArgDescription,
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels. Default 64",
						"default":     64,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels. Default 64",
						"default":     64,
					},
				},
				"required": []string{"color"},
			},
		},

		// Image Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a specific pixel coordinate. Returns hex, RGB, HSL, CMYK and luminance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple points in one call. Each point may carry a label that is echoed back.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Array of points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{
									"type": "integer",
								},
								"y": map[string]interface{}{
									"type": "integer",
								},
								"label": map[string]interface{}{
									"type":        "string",
									"description": "Optional label for this point",
								},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors in an image or region, with percentages.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": regionSchema("Optional region to analyze"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_average_color",
			Description: "Mean color of an image or region with per-channel standard deviation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"region": regionSchema("Optional region to average"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_shade",
			Description: "Shade every pixel of an image toward black (negative percent) or white (positive percent). Returns a base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"percent": map[string]interface{}{
						"type":        "number",
						"description": "Shade percentage, -100 to 100",
					},
				},
				"required": []string{"path", "percent"},
			},
		},
		{
			Name:        "image_darken",
			Description: "Darken every pixel of an image by scaling its channels by (100-amount)%. Returns a base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"amount": map[string]interface{}{
						"type":        "number",
						"description": "Percentage to darken by, 0-100",
					},
				},
				"required": []string{"path", "amount"},
			},
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare two regions of an image pixel by pixel using the CIEDE2000 color difference. Reports similarity, average and maximum difference, and each region's average color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"region1": regionSchema("First region"),
					"region2": regionSchema("Second region"),
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
		{
			Name:        "image_cache_clear",
			Description: "Drop cached images so that changed files are read from disk again. Without a path every cached image is dropped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional image path to evict; omit to clear the whole cache",
					},
				},
			},
		},
	}
}

func regionSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
