// Package scene assembles renderable worlds and holds the built-in scene recipes.
package scene

import (
	"math/rand"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/geometry"
	"github.com/df07/go-importance-raytracer/pkg/integrator"
	"github.com/df07/go-importance-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.HittableList // Objects in the scene
	Lights         *geometry.HittableList // Geometry sampled by the light density; never rendered
	Background     core.Vec3              // Radiance returned by rays that escape the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	BVH            *geometry.BVHNode // Acceleration structure built by Preprocess
}

// NewScene creates an empty scene with default camera and sampling settings
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		World:          geometry.NewHittableList(),
		Lights:         geometry.NewHittableList(),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// Add appends renderable objects to the world
func (s *Scene) Add(objects ...core.Hittable) {
	for _, object := range objects {
		s.World.Add(object)
	}
}

// AddLight registers geometry that diffuse bounces should sample toward. The object is
// not added to the world; pass the emitter itself to Add, or register a proxy here.
func (s *Scene) AddLight(objects ...core.Hittable) {
	for _, object := range objects {
		s.Lights.Add(object)
	}
}

// Preprocess builds the BVH over the world. It must be called once, after the last
// Add and before rendering.
func (s *Scene) Preprocess(random *rand.Rand, logger core.Logger) {
	s.BVH = geometry.NewBVH(s.World, random)
	if logger != nil {
		stats := s.BVH.Stats()
		logger.Printf("BVH: %d objects, %d nodes, %d leaves, max depth %d, avg leaf depth %.1f\n",
			s.World.Len(), stats.TotalNodes, stats.LeafCount, stats.MaxDepth, stats.AvgDepth)
	}
}

// Root returns the hittable to trace against: the BVH when built, else the plain list
func (s *Scene) Root() core.Hittable {
	if s.BVH != nil {
		return s.BVH
	}
	return s.World
}

// NewIntegrator creates a path tracer for this scene. Scenes without lights fall back
// to sampling the material density alone.
func (s *Scene) NewIntegrator() *integrator.PathTracingIntegrator {
	var lights core.Hittable
	if s.Lights.Len() > 0 {
		lights = s.Lights
	}
	return integrator.NewPathTracingIntegrator(s.Root(), lights, s.Background, s.SamplingConfig.Clamped().MaxDepth)
}
