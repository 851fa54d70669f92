package renderer

import (
	"image"
	"time"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples actually taken per pixel (square of the strata count)
	NaNSamples      int           // Samples discarded because they contained NaN
	Duration        time.Duration // Wall-clock render time
}

// Merge adds the counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.NaNSamples += other.NaNSamples
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator
	SampleCount int       // Number of samples taken, including discarded ones
	NaNCount    int       // Number of samples zeroed because a channel was NaN
}

// AddSample adds a new color sample. Samples with NaN channels count toward the
// pixel but contribute black.
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	if color.HasNaN() {
		ps.NaNCount++
		return
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean luminance of an image with channels mapped to [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += core.NewVec3(float64(r)/65535, float64(g)/65535, float64(b)/65535).Luminance()
		}
	}
	return total / float64(pixels)
}
