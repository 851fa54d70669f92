package material

import "github.com/df07/go-importance-raytracer/pkg/core"

// EmptyMaterial neither emits nor scatters. It is used for geometry that only
// serves as a light-sampling target and is never rendered directly.
type EmptyMaterial struct{}

func (EmptyMaterial) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

func (EmptyMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (EmptyMaterial) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}
