package geometry

import (
	"github.com/df07/go-importance-raytracer/pkg/core"
)

// Translate places an object at an offset without copying its geometry
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit moves the ray backwards by the offset, intersects in object space, then moves the hit point forward
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (core.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT, sampler)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// BoundingBox returns the object's box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// PDFValue evaluates the object's density from the origin expressed in object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Object.PDFValue(origin.Subtract(t.Offset), direction)
}

// Random samples toward the object from the origin expressed in object space
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Object.Random(origin.Subtract(t.Offset), sampler)
}
