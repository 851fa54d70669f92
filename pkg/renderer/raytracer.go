package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/integrator"
)

// Raytracer renders a full image by splitting it into tiles for a worker pool
type Raytracer struct {
	camera     *Camera
	integrator integrator.Integrator
	sampling   SamplingConfig
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. Configurations are clamped to valid values.
func NewRaytracer(camera *Camera, integratorInst integrator.Integrator, sampling SamplingConfig, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Raytracer{
		camera:     camera,
		integrator: integratorInst,
		sampling:   sampling.Clamped(),
		config:     config.Clamped(),
		logger:     logger,
	}
}

// Render renders every tile and returns the finished framebuffer
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()

	fb := NewFramebuffer(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.sampling.Seed)
	progress := NewProgress(width * height)
	tileRenderer := NewTileRenderer(rt.camera, rt.integrator, rt.sampling, progress)

	pool := NewWorkerPool(tileRenderer, fb, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, %d tiles on %d workers\n",
		width, height, tileRenderer.SamplesPerPixel(), len(tiles), pool.GetNumWorkers())

	stopReporter := progress.StartReporter(rt.logger, rt.config.ProgressInterval)
	pool.Start()
	for id, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: id})
	}

	stats := RenderStats{SamplesPerPixel: tileRenderer.SamplesPerPixel()}
	var firstErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()
	stopReporter()

	if firstErr != nil {
		return nil, stats, firstErr
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("\rRendered %d pixels, %d samples in %v", stats.TotalPixels, stats.TotalSamples, stats.Duration.Round(time.Millisecond))
	if stats.NaNSamples > 0 {
		rt.logger.Printf(" (%d NaN samples discarded)", stats.NaNSamples)
	}
	rt.logger.Printf("\n")

	return fb, stats, nil
}
