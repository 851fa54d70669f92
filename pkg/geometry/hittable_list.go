package geometry

import (
	"github.com/df07/go-importance-raytracer/pkg/core"
)

// HittableList is a flat aggregate tested by linear scan
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = core.NewAABBUnion(l.bbox, object.BoundingBox())
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit across all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if rec, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of all object boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue averages the densities of all objects, matching Random's uniform choice
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// Random samples a direction toward one uniformly chosen object
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(l.Objects)
	if n == 0 {
		return core.NewVec3(1, 0, 0)
	}
	i := min(int(sampler.Get1D()*float64(n)), n-1)
	return l.Objects[i].Random(origin, sampler)
}
