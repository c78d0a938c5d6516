package imaging

import (
	"image"
	"math"
)

// noticeableDeltaE is the CIEDE2000 difference (0-100 scale) above which two
// pixels count as different.
const noticeableDeltaE = 2.3

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareRegionsResult contains region comparison information
type CompareRegionsResult struct {
	SimilarityScore float64 `json:"similarity_score"` // share of compared pixels within noticeableDeltaE
	PixelsDifferent int     `json:"pixels_different"`
	TotalPixels     int     `json:"total_pixels"`
	SameSize        bool    `json:"same_size"`
	Region1Size     Size    `json:"region1_size"`
	Region2Size     Size    `json:"region2_size"`
	AverageDeltaE   float64 `json:"average_delta_e"`
	MaxDeltaE       float64 `json:"max_delta_e"`
	Region1Average  string  `json:"region1_average"` // "#rrggbb"
	Region2Average  string  `json:"region2_average"`
	AverageColorGap float64 `json:"average_color_gap"` // ΔE between the two averages
}

// CompareRegions compares two regions of an image pixel by pixel using the
// CIEDE2000 color difference. Regions of different size are compared over
// their common top-left overlap.
func CompareRegions(img image.Image, r1, r2 Region) (*CompareRegionsResult, error) {
	a, err := subImage(img, &r1)
	if err != nil {
		return nil, err
	}
	b, err := subImage(img, &r2)
	if err != nil {
		return nil, err
	}

	ab, bb := a.Bounds(), b.Bounds()
	size1 := Size{Width: ab.Dx(), Height: ab.Dy()}
	size2 := Size{Width: bb.Dx(), Height: bb.Dy()}

	// For comparison, use the smaller dimensions
	minW := min(size1.Width, size2.Width)
	minH := min(size1.Height, size2.Height)

	totalPixels := minW * minH
	pixelsDifferent := 0
	var sumDeltaE, maxDeltaE float64

	for dy := 0; dy < minH; dy++ {
		for dx := 0; dx < minW; dx++ {
			c1 := FromColor(a.At(ab.Min.X+dx, ab.Min.Y+dy)).RGB()
			c2 := FromColor(b.At(bb.Min.X+dx, bb.Min.Y+dy)).RGB()

			d := toColorful(c1).DistanceCIEDE2000(toColorful(c2)) * 100
			sumDeltaE += d
			maxDeltaE = math.Max(maxDeltaE, d)
			if d > noticeableDeltaE {
				pixelsDifferent++
			}
		}
	}

	avg1, err := AverageColor(img, &r1)
	if err != nil {
		return nil, err
	}
	avg2, err := AverageColor(img, &r2)
	if err != nil {
		return nil, err
	}
	gap := toColorful(avg1.Color.RGB).DistanceCIEDE2000(toColorful(avg2.Color.RGB)) * 100

	similarity := 1.0 - float64(pixelsDifferent)/float64(totalPixels)

	return &CompareRegionsResult{
		SimilarityScore: math.Round(similarity*1000) / 1000,
		PixelsDifferent: pixelsDifferent,
		TotalPixels:     totalPixels,
		SameSize:        size1 == size2,
		Region1Size:     size1,
		Region2Size:     size2,
		AverageDeltaE:   math.Round(sumDeltaE/float64(totalPixels)*100) / 100,
		MaxDeltaE:       math.Round(maxDeltaE*100) / 100,
		Region1Average:  avg1.Color.Hex,
		Region2Average:  avg2.Color.Hex,
		AverageColorGap: math.Round(gap*100) / 100,
	}, nil
}
