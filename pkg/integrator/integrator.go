// Package integrator estimates the radiance carried along camera rays.
package integrator

import "github.com/df07/go-importance-raytracer/pkg/core"

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns one radiance sample for the ray. Implementations must be
	// safe for concurrent use as long as each goroutine passes its own sampler.
	RayColor(ray core.Ray, sampler core.Sampler) core.Vec3
}
