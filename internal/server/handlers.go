package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

const (
	defaultSwatchSide    = 64
	defaultPaletteCount  = 5
	defaultMixRatio      = 0.5
	noticeableDifference = 0.023 // CIEDE2000 on go-colorful's 0-1 scale (2.3 ΔE)
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "image_sample_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tools/call: %s", params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tools/call %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Resolves color strings or loads images from cache as needed
//  4. Calls the appropriate colorspace/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Color Conversion
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_extract":
		return s.handleColorExtract(args)

	// Color Transforms
	case "color_opacity":
		return s.handleColorOpacity(args)
	case "color_darken":
		return s.handleColorDarken(args)
	case "color_shade":
		return s.handleColorShade(args)
	case "color_contrast":
		return s.handleColorContrast(args)
	case "color_mix":
		return s.handleColorMix(args)
	case "color_distance":
		return s.handleColorDistance(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Image Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_shade":
		return s.handleImageShade(args)
	case "image_darken":
		return s.handleImageDarken(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)
	case "image_cache_clear":
		return s.handleImageCacheClear(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Color Conversion Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

// ConvertResult is a resolved color in every representation.
type ConvertResult struct {
	Input  string `json:"input"`
	Format string `json:"format"` // notation the input was recognized as, "name" for CSS names
	imaging.ColorResult
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, format, err := resolveColor(a.Color)
	if err != nil {
		return nil, err
	}

	name := format.String()
	if format == colorspace.FormatUnknown {
		name = "name"
	}
	return &ConvertResult{
		Input:       a.Color,
		Format:      name,
		ColorResult: imaging.Describe(c),
	}, nil
}

type colorExtractArgs struct {
	Text string `json:"text"`
}

// ExtractResult lists the color tokens found in a block of text.
type ExtractResult struct {
	Colors []string `json:"colors"`
	Count  int      `json:"count"`
}

func (s *Server) handleColorExtract(args json.RawMessage) (interface{}, error) {
	var a colorExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	colors := colorspace.FindColors(a.Text)
	if colors == nil {
		colors = []string{}
	}
	return &ExtractResult{Colors: colors, Count: len(colors)}, nil
}

// === Color Transform Handlers ===

// TransformResult pairs a color transform's input with its output.
type TransformResult struct {
	Input  string  `json:"input"`
	Amount float64 `json:"amount"`
	Result string  `json:"result"`
}

type colorOpacityArgs struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

func (s *Server) handleColorOpacity(args json.RawMessage) (interface{}, error) {
	var a colorOpacityArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &TransformResult{
		Input:  a.Color,
		Amount: a.Opacity,
		Result: colorspace.Opacity(a.Color, a.Opacity),
	}, nil
}

type colorDarkenArgs struct {
	Color  string  `json:"color"`
	Amount float64 `json:"amount"`
}

func (s *Server) handleColorDarken(args json.RawMessage) (interface{}, error) {
	var a colorDarkenArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &TransformResult{
		Input:  a.Color,
		Amount: a.Amount,
		Result: colorspace.Darken(a.Color, a.Amount),
	}, nil
}

type colorShadeArgs struct {
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

func (s *Server) handleColorShade(args json.RawMessage) (interface{}, error) {
	var a colorShadeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	out, err := colorspace.Shade(a.Color, a.Percent)
	if err != nil {
		return nil, err
	}
	return &TransformResult{Input: a.Color, Amount: a.Percent, Result: out}, nil
}

type colorContrastArgs struct {
	Color  string   `json:"color"`
	Amount *float64 `json:"amount"`
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	amount := float64(colorspace.DefaultContrastAmount)
	if a.Amount != nil {
		amount = *a.Amount
	}
	out, err := colorspace.ContrastBy(a.Color, amount)
	if err != nil {
		return nil, err
	}
	return &TransformResult{Input: a.Color, Amount: amount, Result: out}, nil
}

type colorPairArgs struct {
	Color1 string   `json:"color1"`
	Color2 string   `json:"color2"`
	Ratio  *float64 `json:"ratio"`
}

func (a colorPairArgs) resolve() (colorspace.RGBA, colorspace.RGBA, error) {
	c1, _, err := resolveColor(a.Color1)
	if err != nil {
		return colorspace.RGBA{}, colorspace.RGBA{}, fmt.Errorf("color1: %w", err)
	}
	c2, _, err := resolveColor(a.Color2)
	if err != nil {
		return colorspace.RGBA{}, colorspace.RGBA{}, fmt.Errorf("color2: %w", err)
	}
	return c1, c2, nil
}

// MixResult is the blend of two colors.
type MixResult struct {
	Ratio float64             `json:"ratio"`
	Color imaging.ColorResult `json:"color"`
}

func (s *Server) handleColorMix(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ratio := defaultMixRatio
	if a.Ratio != nil {
		ratio = *a.Ratio
	}
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("ratio %v outside 0-1", ratio)
	}

	c1, c2, err := a.resolve()
	if err != nil {
		return nil, err
	}

	r, g, b := toColorful(c1).BlendLab(toColorful(c2), ratio).Clamped().RGB255()
	mixed := colorspace.RGBA{
		R: int(r),
		G: int(g),
		B: int(b),
		A: int(math.Round(float64(c1.A) + float64(c2.A-c1.A)*ratio)),
	}
	return &MixResult{Ratio: ratio, Color: imaging.Describe(mixed)}, nil
}

// DistanceResult compares two colors perceptually.
type DistanceResult struct {
	Color1           string  `json:"color1"` // resolved "#rrggbb"
	Color2           string  `json:"color2"`
	CIEDE2000        float64 `json:"ciede2000"` // ΔE*00, 0-100 scale
	Luminance1       float64 `json:"luminance1"`
	Luminance2       float64 `json:"luminance2"`
	Distinguishable  bool    `json:"distinguishable"`   // ΔE above the just-noticeable difference
	ContrastingShade string  `json:"contrasting_shade"` // readable shade for color1
}

func (s *Server) handleColorDistance(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c1, c2, err := a.resolve()
	if err != nil {
		return nil, err
	}

	d := toColorful(c1).DistanceCIEDE2000(toColorful(c2))
	hex1 := c1.RGB().Hex()
	shade, err := colorspace.Contrast(hex1)
	if err != nil {
		return nil, err
	}

	return &DistanceResult{
		Color1:           hex1,
		Color2:           c2.RGB().Hex(),
		CIEDE2000:        d * 100,
		Luminance1:       colorspace.Luminance(c1.RGB()),
		Luminance2:       colorspace.Luminance(c2.RGB()),
		Distinguishable:  d > noticeableDifference,
		ContrastingShade: shade,
	}, nil
}

// toColorful converts the color channels to go-colorful's 0-1 sRGB. Alpha is
// not represented.
func toColorful(c colorspace.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

type colorSwatchArgs struct {
	Color  string `json:"color"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = defaultSwatchSide
	}
	if a.Height == 0 {
		a.Height = defaultSwatchSide
	}
	c, _, err := resolveColor(a.Color)
	if err != nil {
		return nil, err
	}
	return imaging.RenderSwatch(c, a.Width, a.Height)
}

// === Image Color Handlers ===

type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r *regionArgs) toRegion() *imaging.Region {
	if r == nil {
		return nil
	}
	return &imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string      `json:"path"`
	Count  int         `json:"count"`
	Region *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count <= 0 {
		a.Count = defaultPaletteCount
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region.toRegion())
}

type imageAverageColorArgs struct {
	Path   string      `json:"path"`
	Region *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageAverageColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AverageColor(img, a.Region.toRegion())
}

type imageShadeArgs struct {
	Path    string  `json:"path"`
	Percent float64 `json:"percent"`
}

func (s *Server) handleImageShade(args json.RawMessage) (interface{}, error) {
	var a imageShadeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ShadeImage(img, a.Percent)
}

type imageDarkenArgs struct {
	Path   string  `json:"path"`
	Amount float64 `json:"amount"`
}

func (s *Server) handleImageDarken(args json.RawMessage) (interface{}, error) {
	var a imageDarkenArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DarkenImage(img, a.Amount)
}

type imageCompareRegionsArgs struct {
	Path    string     `json:"path"`
	Region1 regionArgs `json:"region1"`
	Region2 regionArgs `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, *a.Region1.toRegion(), *a.Region2.toRegion())
}

type imageCacheClearArgs struct {
	Path string `json:"path"`
}

// CacheClearResult reports what was dropped from the image cache.
type CacheClearResult struct {
	Evicted   int `json:"evicted"`
	Remaining int `json:"remaining"`
}

func (s *Server) handleImageCacheClear(args json.RawMessage) (interface{}, error) {
	var a imageCacheClearArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	before := s.cache.Len()
	if a.Path == "" {
		s.cache.Clear()
	} else {
		s.cache.Evict(a.Path)
	}
	remaining := s.cache.Len()

	return &CacheClearResult{Evicted: before - remaining, Remaining: remaining}, nil
}
