package scene

import (
	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/geometry"
	"github.com/df07/go-importance-raytracer/pkg/material"
	"github.com/df07/go-importance-raytracer/pkg/renderer"
)

// skyBlue is the flat background of the outdoor scenes
var skyBlue = core.NewVec3(0.70, 0.80, 1.00)

// outdoorCamera looks at the origin from (13, 2, 3) with a narrow field of view
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		FocusDistance: 10,
	}
}

// NewBouncingSpheresScene creates a ground sphere covered in small random spheres.
// Diffuse spheres move upward during the shutter interval.
func NewBouncingSpheresScene(opts Options) *Scene {
	opts = opts.withDefaults()
	sampler := core.NewRandomSampler(opts.Random)

	s := NewScene("bouncing-spheres")
	s.Background = skyBlue
	s.CameraConfig = outdoorCamera()
	s.CameraConfig.DefocusAngle = 0.6
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42}

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.5*sampler.Get1D(), 0.2, float64(b)+0.5*sampler.Get1D())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return s
}

// NewCheckeredSpheresScene creates two large spheres sharing a solid checker texture
func NewCheckeredSpheresScene(opts Options) *Scene {
	s := NewScene("checkered-spheres")
	s.Background = skyBlue
	s.CameraConfig = outdoorCamera()
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42}

	checker := material.NewTexturedLambertian(
		material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return s
}

// NewEarthScene creates a single globe wrapped in an image texture
func NewEarthScene(opts Options) *Scene {
	opts = opts.withDefaults()

	s := NewScene("earth")
	s.Background = skyBlue
	s.CameraConfig = outdoorCamera()
	s.CameraConfig.Center = core.NewVec3(-3, 6, -10)
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42}

	earth := material.NewImageTextureFromFile(opts.TexturePath, opts.Logger)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth)))
	return s
}

// NewPerlinSpheresScene creates a ground and a sphere with a marble noise texture
func NewPerlinSpheresScene(opts Options) *Scene {
	opts = opts.withDefaults()

	s := NewScene("perlin-spheres")
	s.Background = skyBlue
	s.CameraConfig = outdoorCamera()
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(opts.Random), 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	return s
}
