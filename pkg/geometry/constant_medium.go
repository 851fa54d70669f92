package geometry

import (
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium (smoke, fog) filling a closed boundary
type ConstantMedium struct {
	Boundary      core.Hittable
	negInvDensity float64
	phaseFunction core.Material
}

// NewConstantMedium creates a medium of the given density with a solid-color isotropic phase function
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewIsotropic(albedo),
	}
}

// NewTexturedConstantMedium creates a medium whose isotropic phase function is textured
func NewTexturedConstantMedium(boundary core.Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit samples an exponential free-flight distance and reports a scattering
// event if it falls between the ray's entry and exit of the boundary.
// The boundary is assumed convex.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return core.HitRecord{}, false
	}
	rec2, ok := m.Boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)), sampler)
	if !ok {
		return core.HitRecord{}, false
	}

	t1 := math.Max(rec1.T, rayT.Min)
	t2 := math.Min(rec2.T, rayT.Max)
	if t1 >= t2 {
		return core.HitRecord{}, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	return core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.phaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// PDFValue is zero; media are never light-sampling targets
func (m *ConstantMedium) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// Random returns an arbitrary fixed direction
func (m *ConstantMedium) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
