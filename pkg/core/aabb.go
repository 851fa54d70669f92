package core

import "math"

// minAABBExtent is the smallest width any bounding box axis is allowed to have
const minAABBExtent = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing
	EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
	// UniverseAABB bounds everything
	UniverseAABB = AABB{X: UniverseInterval, Y: UniverseInterval, Z: UniverseInterval}
)

// NewAABB creates an AABB from per-axis intervals, padding any axis thinner than minAABBExtent
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates an AABB with the two points as opposite corners, in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	box := AABB{
		X: NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		Y: NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		Z: NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	}
	return box.padToMinimums()
}

// NewAABBUnion returns the box enclosing both a and b. No padding is applied.
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: IntervalUnion(a.X, b.X),
		Y: IntervalUnion(a.Y, b.Y),
		Z: IntervalUnion(a.Z, b.Z),
	}
}

func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() < minAABBExtent {
		aabb.X = aabb.X.Expand(minAABBExtent)
	}
	if aabb.Y.Size() < minAABBExtent {
		aabb.Y = aabb.Y.Expand(minAABBExtent)
	}
	if aabb.Z.Size() < minAABBExtent {
		aabb.Z = aabb.Z.Expand(minAABBExtent)
	}
	return aabb
}

// AxisInterval returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Hit tests if a ray overlaps this AABB within rayT using the slab method.
// Axes where the ray is parallel produce infinite or NaN slab bounds; the
// comparisons below leave the running interval untouched in the NaN case.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv

		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Offset returns the box translated by displacement
func (aabb AABB) Offset(displacement Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(displacement.X),
		Y: aabb.Y.Offset(displacement.Y),
		Z: aabb.Z.Offset(displacement.Z),
	}
}
