package geometry

import (
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// RotateY rotates an object about the world Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about Y
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bound the rotated box by transforming all 8 corners
	bbox := object.BoundingBox()
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*bbox.X.Max + float64(1-i)*bbox.X.Min
				y := float64(j)*bbox.Y.Max + float64(1-j)*bbox.Y.Min
				z := float64(k)*bbox.Z.Max + float64(1-k)*bbox.Z.Min

				corner := r.toWorld(core.NewVec3(x, y, z))
				lo = core.NewVec3(math.Min(lo.X, corner.X), math.Min(lo.Y, corner.Y), math.Min(lo.Z, corner.Z))
				hi = core.NewVec3(math.Max(hi.X, corner.X), math.Max(hi.Y, corner.Y), math.Max(hi.Z, corner.Z))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(lo, hi)

	return r
}

// toObject rotates a world-space vector by -theta
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by +theta
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, then rotates the hit point and normal back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (core.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	rec, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return rec, true
}

// BoundingBox returns the precomputed world-space bounds
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// PDFValue evaluates the object's density in object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return r.Object.PDFValue(r.toObject(origin), r.toObject(direction))
}

// Random samples in object space and rotates the direction back to world space
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.toWorld(r.Object.Random(r.toObject(origin), sampler))
}
