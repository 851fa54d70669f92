package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is anything a ray can intersect: primitives, aggregates, and transform wrappers.
// Implementations are immutable once built and are shared by all render workers.
type Hittable interface {
	// Hit returns the closest intersection with t inside rayT.
	// The sampler is only consulted by stochastic geometry such as participating media.
	Hit(ray Ray, rayT Interval, sampler Sampler) (HitRecord, bool)
	BoundingBox() AABB

	// PDFValue is the solid-angle density of sampling direction from origin toward this object
	PDFValue(origin, direction Vec3) float64
	// Random returns a direction (not necessarily unit length) from origin toward this object
	Random(origin Vec3, sampler Sampler) Vec3
}

// Material describes how a surface scatters and emits light
type Material interface {
	Emitted(rayIn Ray, hit HitRecord) Vec3
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterRecord, bool)
	// ScatteringPDF is the material's own density for the scattered direction
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// PDF is a probability density over directions that can also be sampled
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the incoming ray
	Material  Material // Material of the hit object
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface coordinates for texturing
	FrontFace bool     // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is the result of a material scattering event.
// When SkipPDF is set the material is specular: SkipPDFRay is the only
// continuation and PDF is unused.
type ScatterRecord struct {
	Attenuation Vec3
	PDF         PDF
	SkipPDF     bool
	SkipPDFRay  Ray
}
