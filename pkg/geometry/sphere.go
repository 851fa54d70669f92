package geometry

import (
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// Sphere represents a sphere whose center may move linearly over the shutter interval
type Sphere struct {
	center   core.Ray // center at time t is center.At(t)
	Radius   float64
	Material core.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere moving from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	return &Sphere{
		center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABBUnion(box1, box2),
	}
}

// Center returns the sphere center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	return s.center.At(time)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (core.HitRecord, bool) {
	currentCenter := s.Center(ray.Time)

	// Half-b form of the quadratic |O + tD - C|² = r²
	oc := currentCenter.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root that lies in the acceptable range
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	rec := core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := rec.Point.Subtract(currentCenter).Divide(s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.UV = sphereUV(outwardNormal)

	return rec, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u is the angle around Y from X=-1, v the angle from Y=-1 to Y=+1, both in [0,1].
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box covering the whole motion
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns 1/solid-angle of the cone the sphere subtends at origin, or 0 if direction misses it
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil); !ok {
		return 0
	}

	distanceSquared := s.Center(0).Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random samples a direction uniformly inside the cone the sphere subtends at origin
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center(0).Subtract(origin)
	distanceSquared := direction.LengthSquared()
	uvw := core.NewONB(direction)
	return uvw.Transform(core.SampleToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}
