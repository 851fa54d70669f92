package scene

import (
	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/geometry"
	"github.com/df07/go-importance-raytracer/pkg/material"
	"github.com/df07/go-importance-raytracer/pkg/renderer"
)

// NewFinalScene creates the showcase scene: a field of random-height boxes, a moving
// sphere, glass, fuzzy metal, a subsurface-like glass ball filled with blue fog, a thin
// global mist, image and noise textures, and a rotated cluster of 1000 small spheres.
func NewFinalScene(opts Options) *Scene {
	opts = opts.withDefaults()
	sampler := core.NewRandomSampler(opts.Random)

	s := NewScene("final-scene")
	s.Background = core.Vec3{}
	s.CameraConfig = renderer.CameraConfig{
		Center:        core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   1.0,
		VFov:          40,
		FocusDistance: 10,
	}
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 500, MaxDepth: 50, Seed: 42}

	// Ground: 20x20 boxes of random height, grouped under their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.Add(geometry.NewBVH(boxes, opts.Random))

	light := geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265),
		material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	s.Add(light)

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell with a dense blue medium inside
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := material.NewImageTextureFromFile(opts.TexturePath, opts.Logger)
	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))

	noise := material.NewNoiseTexture(material.NewPerlin(opts.Random), 0.2)
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)))

	// Cluster of small white spheres in a 165 unit cube, rotated and moved as one
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for j := 0; j < 1000; j++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3Range(sampler, 0, 165), 10, white))
	}
	s.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster, opts.Random), 15),
		core.NewVec3(-100, 270, 395),
	))

	s.AddLight(light)
	return s
}

// NewFinalSceneExtreme is the final scene at a converged sample count
func NewFinalSceneExtreme(opts Options) *Scene {
	s := NewFinalScene(opts)
	s.Name = "final-scene-extreme"
	s.SamplingConfig.SamplesPerPixel = 10000
	return s
}
