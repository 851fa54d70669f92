package renderer

import (
	"bytes"
	"image/png"
	"math/rand"
	"sync/atomic"
	"testing"

	"gonum.org/v1/plot/cmpimg"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/geometry"
	"github.com/df07/go-importance-raytracer/pkg/integrator"
	"github.com/df07/go-importance-raytracer/pkg/material"
)

// constantIntegrator returns the same color for every ray
type constantIntegrator struct {
	color core.Vec3
	calls atomic.Int64
}

func (c *constantIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	c.calls.Add(1)
	return c.color
}

// panickingIntegrator fails on every ray
type panickingIntegrator struct{}

func (panickingIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	panic("boom")
}

// createTestScene builds a small lit scene with diffuse, metal and glass spheres
func createTestScene() (world, lights core.Hittable) {
	list := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
	)
	light := geometry.NewQuad(core.NewVec3(-1, 2, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2),
		material.NewDiffuseLight(core.NewVec3(4, 4, 4)))
	list.Add(light)
	return geometry.NewBVH(list, rand.New(rand.NewSource(1))), light
}

func renderTestScene(t *testing.T, workers, tileSize int) []byte {
	t.Helper()
	world, lights := createTestScene()
	camera := NewCamera(CameraConfig{
		Center:        core.NewVec3(0, 0.5, 1.5),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         32,
		AspectRatio:   16.0 / 9.0,
		VFov:          60,
		FocusDistance: 1,
	})
	pt := integrator.NewPathTracingIntegrator(world, lights, core.NewVec3(0.7, 0.8, 1.0), 8)
	rt := NewRaytracer(camera, pt,
		SamplingConfig{SamplesPerPixel: 4, MaxDepth: 8, Seed: 42},
		RenderConfig{TileSize: tileSize, NumWorkers: workers},
		NewNopLogger())

	fb, _, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.ToImage()); err != nil {
		t.Fatalf("Failed to encode render: %v", err)
	}
	return buf.Bytes()
}

func TestRaytracer_DeterministicWithSeed(t *testing.T) {
	// Tiles own their generators, so worker count must not change the image
	reference := renderTestScene(t, 1, 8)
	tests := []struct {
		name    string
		workers int
	}{
		{"Same configuration", 1},
		{"Four workers", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderTestScene(t, tt.workers, 8)
			equal, err := cmpimg.EqualApprox("png", reference, got, 0)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Error("Expected bit-identical renders for the same seed")
			}
		})
	}
}

func TestRaytracer_ConstantIntegrator(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 20
	config.AspectRatio = 2
	camera := NewCamera(config)
	mock := &constantIntegrator{color: core.NewVec3(0.36, 1, 0)}

	rt := NewRaytracer(camera, mock, SamplingConfig{SamplesPerPixel: 10, MaxDepth: 5}, RenderConfig{TileSize: 7, NumWorkers: 3}, nil)
	fb, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if fb.Width != 20 || fb.Height != 10 {
		t.Fatalf("Expected 20x10 framebuffer, got %dx%d", fb.Width, fb.Height)
	}
	// 10 samples per pixel round down to a 3x3 strata grid
	if stats.SamplesPerPixel != 9 || stats.TotalSamples != 200*9 || stats.TotalPixels != 200 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if mock.calls.Load() != 200*9 {
		t.Errorf("Expected %d integrator calls, got %d", 200*9, mock.calls.Load())
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if got := fb.At(x, y); got != [3]uint8{153, 255, 0} {
				t.Fatalf("Pixel (%d,%d) = %v, expected [153 255 0]", x, y, got)
			}
		}
	}
}

func TestRaytracer_WorkerPanicBecomesError(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 8
	rt := NewRaytracer(NewCamera(config), panickingIntegrator{}, DefaultSamplingConfig(), RenderConfig{TileSize: 4, NumWorkers: 2}, nil)

	if _, _, err := rt.Render(); err == nil {
		t.Error("Expected an error when the integrator panics")
	}
}

func TestTileGrid_CoversImageOnce(t *testing.T) {
	width, height := 50, 23
	tiles := NewTileGrid(width, height, 16, 100)

	covered := make([]int, width*height)
	seeds := make(map[int64]bool)
	for _, tile := range tiles {
		if seeds[tile.Seed] {
			t.Errorf("Tile %d reuses seed %d", tile.ID, tile.Seed)
		}
		seeds[tile.Seed] = true
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[y*width+x]++
			}
		}
	}

	if len(tiles) != 4*2 {
		t.Errorf("Expected 8 tiles, got %d", len(tiles))
	}
	for i, n := range covered {
		if n != 1 {
			t.Fatalf("Pixel %d covered %d times", i, n)
		}
	}
}

func TestProgress_ConcurrentAdds(t *testing.T) {
	p := NewProgress(1000)
	done := make(chan struct{})
	for w := 0; w < 10; w++ {
		go func() {
			for i := 0; i < 100; i++ {
				p.Add(1)
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < 10; w++ {
		<-done
	}

	if p.Done() != 1000 || p.Fraction() != 1 {
		t.Errorf("Expected 1000 completed pixels, got %d", p.Done())
	}
}
