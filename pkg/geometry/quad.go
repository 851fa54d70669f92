package geometry

import (
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// Quad represents a planar parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (U × V normalized)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal · p = D
	W        core.Vec3     // n / (n·n), used to project onto plane coordinates
	Area     float64
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Bounds of both diagonals cover all four vertices
	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
		Area:     n.Length(),
		bbox:     core.NewAABBUnion(diagonal1, diagonal2),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (core.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return core.HitRecord{}, false
	}

	// Plane coordinates of the hit point
	intersection := ray.At(t)
	planarHit := intersection.Subtract(q.Corner)
	alpha := q.W.Dot(planarHit.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planarHit))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        t,
		Point:    intersection,
		Material: q.Material,
		UV:       core.NewVec2(alpha, beta),
	}
	rec.SetFaceNormal(ray, q.Normal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue converts the uniform area density of the quad to solid angle as seen from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	rec, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	return distanceSquared / (cosine * q.Area)
}

// Random returns the direction from origin to a uniformly chosen point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	p := q.Corner.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y))
	return p.Subtract(origin)
}
