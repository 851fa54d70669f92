// Package pdf provides probability densities over directions used for importance sampling.
package pdf

import (
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// SpherePDF is the uniform density over all directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere density
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value returns 1/(4π) for every direction
func (p *SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniformly distributed unit direction
func (p *SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomUnitVector(sampler)
}

// CosinePDF is the cosine-weighted density over the hemisphere about a normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine density about w
func NewCosinePDF(w core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(w)}
}

// Value returns max(0, cosθ/π)
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosine/math.Pi)
}

// Generate draws a cosine-weighted direction in the basis of the normal
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Transform(core.RandomCosineDirection(sampler))
}

// HemispherePDF is the uniform density over the hemisphere about a normal
type HemispherePDF struct {
	normal core.Vec3
}

// NewHemispherePDF creates a uniform hemisphere density about normal
func NewHemispherePDF(normal core.Vec3) *HemispherePDF {
	return &HemispherePDF{normal: normal.Normalize()}
}

// Value returns 1/(2π) above the surface and 0 below it
func (p *HemispherePDF) Value(direction core.Vec3) float64 {
	if direction.Dot(p.normal) <= 0 {
		return 0
	}
	return 1.0 / (2.0 * math.Pi)
}

// Generate draws a uniform direction on the hemisphere
func (p *HemispherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomOnHemisphere(p.normal, sampler)
}

// HittablePDF samples directions toward a piece of geometry, typically a light
type HittablePDF struct {
	objects core.Hittable
	origin  core.Vec3
}

// NewHittablePDF creates a density of directions from origin toward objects
func NewHittablePDF(objects core.Hittable, origin core.Vec3) *HittablePDF {
	return &HittablePDF{objects: objects, origin: origin}
}

// Value delegates to the geometry's solid-angle density
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.objects.PDFValue(p.origin, direction)
}

// Generate delegates to the geometry's direction sampler
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.objects.Random(p.origin, sampler)
}

// MixturePDF is an equal-weight blend of two densities
type MixturePDF struct {
	p [2]core.PDF
}

// NewMixturePDF creates a 50/50 mixture of p0 and p1
func NewMixturePDF(p0, p1 core.PDF) *MixturePDF {
	return &MixturePDF{p: [2]core.PDF{p0, p1}}
}

// Value returns the average of both densities
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate picks one of the two densities with equal probability and samples it
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
