package renderer

import (
	"math/rand"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
	strata     int // Stratified grid is strata x strata per pixel
	progress   *Progress
}

// NewTileRenderer creates a new tile renderer. progress may be nil.
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator, sampling SamplingConfig, progress *Progress) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		strata:     StrataPerAxis(sampling.Clamped().SamplesPerPixel),
		progress:   progress,
	}
}

// SamplesPerPixel returns the number of samples actually taken per pixel
func (tr *TileRenderer) SamplesPerPixel() int {
	return tr.strata * tr.strata
}

// RenderTile renders every pixel of the tile into fb with a generator seeded from the tile.
// Tiles never overlap, so concurrent calls on distinct tiles may share fb.
func (tr *TileRenderer) RenderTile(tile *Tile, fb *Framebuffer) RenderStats {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(tile.Seed)))
	bounds := tile.Bounds

	stats := RenderStats{
		TotalPixels:     bounds.Dx() * bounds.Dy(),
		SamplesPerPixel: tr.SamplesPerPixel(),
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := tr.samplePixel(i, j, sampler)
			fb.Set(i, j, ps.GetColor())

			stats.TotalSamples += ps.SampleCount
			stats.NaNSamples += ps.NaNCount
		}
		if tr.progress != nil {
			tr.progress.Add(bounds.Dx())
		}
	}

	return stats
}

// samplePixel takes one jittered sample in each stratum of the pixel
func (tr *TileRenderer) samplePixel(i, j int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	for sj := 0; sj < tr.strata; sj++ {
		for si := 0; si < tr.strata; si++ {
			offset := StratifiedOffset(si, sj, tr.strata, sampler)
			ray := tr.camera.GetRay(i, j, offset, sampler)
			ps.AddSample(tr.integrator.RayColor(ray, sampler))
		}
	}
	return ps
}
