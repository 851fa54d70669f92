package scene

import (
	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/geometry"
	"github.com/df07/go-importance-raytracer/pkg/material"
	"github.com/df07/go-importance-raytracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// Ceiling light rectangle, facing down into the box
var (
	cornellLightCorner = core.NewVec3(343, 554, 332)
	cornellLightU      = core.NewVec3(-130, 0, 0)
	cornellLightV      = core.NewVec3(0, 0, -105)
)

// newCornellScene creates the empty box: colored side walls, white floor, ceiling and
// back wall, and the ceiling light
func newCornellScene(name string) *Scene {
	s := NewScene(name)
	s.Background = core.Vec3{} // Black background
	s.CameraConfig = renderer.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:            core.NewVec3(0, 1, 0),        // Standard up direction
		Width:         400,
		AspectRatio:   1.0,  // Square aspect ratio for Cornell box
		VFov:          40.0, // Field of view
		FocusDistance: 10,
	}
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42}

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	s.Add(
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		geometry.NewQuad(cornellLightCorner, cornellLightU, cornellLightV, light),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)
	return s
}

// cornellLightProxy is the ceiling light shape without a material, for light sampling only
func cornellLightProxy() *geometry.Quad {
	return geometry.NewQuad(cornellLightCorner, cornellLightU, cornellLightV, material.EmptyMaterial{})
}

// placeBox builds an axis-aligned box at the origin, spins it about Y and moves it into place
func placeBox(size core.Vec3, angle float64, offset core.Vec3, mat core.Material) core.Hittable {
	box := geometry.NewBox(core.NewVec3(0, 0, 0), size, mat)
	return geometry.NewTranslate(geometry.NewRotateY(box, angle), offset)
}

// NewCornellBoxScene creates the Cornell box with a tall aluminum box and a short white box
func NewCornellBoxScene(opts Options) *Scene {
	s := newCornellScene("cornell-box")
	s.SamplingConfig.SamplesPerPixel = 1000

	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	s.Add(
		placeBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), aluminum),
		placeBox(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white),
	)
	s.AddLight(cornellLightProxy())
	return s
}

// NewCornellSmokeScene replaces both boxes with constant-density media, one dark and one light
func NewCornellSmokeScene(opts Options) *Scene {
	s := newCornellScene("cornell-smoke")

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall := placeBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white)
	short := placeBox(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white)

	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)
	s.AddLight(cornellLightProxy())
	return s
}

// NewCornellGlassScene puts a glass sphere next to the tall box and samples both the light
// and the sphere, so caustics through the glass converge
func NewCornellGlassScene(opts Options) *Scene {
	s := newCornellScene("cornell-glass")
	s.SamplingConfig.SamplesPerPixel = 1000

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	glassCenter := core.NewVec3(190, 90, 190)

	s.Add(
		placeBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white),
		geometry.NewSphere(glassCenter, 90, material.NewDielectric(1.5)),
	)
	s.AddLight(
		cornellLightProxy(),
		geometry.NewSphere(glassCenter, 90, material.EmptyMaterial{}),
	)
	return s
}
