package scene

import (
	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/geometry"
	"github.com/df07/go-importance-raytracer/pkg/material"
	"github.com/df07/go-importance-raytracer/pkg/renderer"
)

// NewQuadsScene creates five colored quads around the view axis
func NewQuadsScene(opts Options) *Scene {
	s := NewScene("quads")
	s.Background = skyBlue
	s.CameraConfig = renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 9),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   1.0,
		VFov:          80,
		FocusDistance: 10,
	}
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42}

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.Add(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)
	return s
}

// NewSimpleLightScene creates the noise spheres in the dark, lit by a spherical and a
// rectangular light. Both emitters are sampled directly.
func NewSimpleLightScene(opts Options) *Scene {
	opts = opts.withDefaults()

	s := NewScene("simple-light")
	s.Background = core.Vec3{}
	s.CameraConfig = renderer.CameraConfig{
		Center:        core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		FocusDistance: 10,
	}
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(opts.Random), 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light)
	quadLight := geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light)
	s.Add(sphereLight, quadLight)
	s.AddLight(sphereLight, quadLight)

	return s
}
