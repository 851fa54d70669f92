package renderer

import (
	"runtime"
	"time"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually 0,1,0)
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width/height ratio
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance float64   // Distance from camera to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         100,
		AspectRatio:   1.0,
		VFov:          90,
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

// Height returns the image height implied by width and aspect ratio, at least 1
func (c CameraConfig) Height() int {
	if c.AspectRatio <= 0 {
		return max(1, c.Width)
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Clamped returns a copy with out-of-range values pulled back to the nearest valid value
func (c CameraConfig) Clamped() CameraConfig {
	c.Width = max(1, c.Width)
	if c.AspectRatio <= 0 {
		c.AspectRatio = 1
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		c.VFov = 90
	}
	if c.FocusDistance <= 0 {
		c.FocusDistance = 1
	}
	c.DefocusAngle = max(0, c.DefocusAngle)
	return c
}

// MergeCameraConfig overrides base with every non-zero field of override
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	zero := core.Vec3{}
	if override.Center != zero {
		base.Center = override.Center
	}
	if override.LookAt != zero {
		base.LookAt = override.LookAt
	}
	if override.Up != zero {
		base.Up = override.Up
	}
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.AspectRatio > 0 {
		base.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		base.VFov = override.VFov
	}
	if override.DefocusAngle > 0 {
		base.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance > 0 {
		base.FocusDistance = override.FocusDistance
	}
	return base
}

// SamplingConfig contains per-pixel sampling configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Sample budget per pixel, rounded down to a square strata grid
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed; each tile derives its own generator from it
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Clamped returns a copy with out-of-range values pulled back to the nearest valid value
func (c SamplingConfig) Clamped() SamplingConfig {
	c.SamplesPerPixel = max(1, c.SamplesPerPixel)
	c.MaxDepth = max(0, c.MaxDepth)
	return c
}

// MergeSamplingConfig overrides base with every non-zero field of override
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	if override.SamplesPerPixel > 0 {
		base.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		base.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		base.Seed = override.Seed
	}
	return base
}

// RenderConfig controls how work is split across workers
type RenderConfig struct {
	TileSize         int           // Size of each square tile in pixels
	NumWorkers       int           // Number of parallel workers (0 = use CPU count)
	ProgressInterval time.Duration // How often progress is logged (0 disables)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:         32,
		NumWorkers:       0, // Auto-detect CPU count
		ProgressInterval: time.Second,
	}
}

// Clamped returns a copy with out-of-range values pulled back to the nearest valid value
func (c RenderConfig) Clamped() RenderConfig {
	c.TileSize = max(1, c.TileSize)
	if c.NumWorkers <= 0 {
		c.NumWorkers = runtime.NumCPU()
	}
	c.ProgressInterval = max(0, c.ProgressInterval)
	return c
}
