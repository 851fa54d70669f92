package integrator

import (
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/pdf"
)

// hitEpsilon keeps secondary rays from re-hitting the surface they leave
const hitEpsilon = 0.001

// PathTracingIntegrator is a recursive Monte-Carlo path tracer. Diffuse bounces
// sample an equal mixture of the material's density and a density toward the
// light geometry; specular bounces follow the single scattered ray.
type PathTracingIntegrator struct {
	world      core.Hittable
	lights     core.Hittable // nil disables light sampling
	background core.Vec3
	maxDepth   int
}

// NewPathTracingIntegrator creates a path tracer over world. lights may be nil.
func NewPathTracingIntegrator(world, lights core.Hittable, background core.Vec3, maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		world:      world,
		lights:     lights,
		background: background,
		maxDepth:   maxDepth,
	}
}

// RayColor returns one radiance sample for a camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, pt.maxDepth, sampler)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := pt.world.Hit(ray, core.NewInterval(hitEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.background
	}

	emitted := hit.Material.Emitted(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.SkipPDF {
		return emitted.Add(scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.SkipPDFRay, depth-1, sampler)))
	}

	return emitted.Add(pt.scatteredColor(ray, hit, scatter, depth, sampler))
}

// scatteredColor estimates the light arriving through a diffuse bounce:
// attenuation * scatteringPDF * Li / samplingPDF
func (pt *PathTracingIntegrator) scatteredColor(ray core.Ray, hit core.HitRecord, scatter core.ScatterRecord, depth int, sampler core.Sampler) core.Vec3 {
	var sampling core.PDF = scatter.PDF
	if pt.lights != nil {
		sampling = pdf.NewMixturePDF(pdf.NewHittablePDF(pt.lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAtTime(hit.Point, sampling.Generate(sampler), ray.Time)
	pdfValue := sampling.Value(scattered.Direction)
	if pdfValue <= 0 {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.rayColor(scattered, depth-1, sampler)
	return scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(incoming)
}
