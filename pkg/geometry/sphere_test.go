package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/material"
)

var forward = core.NewInterval(0.001, math.Inf(1))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.EmptyMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if rec, isHit := sphere.Hit(ray, forward, nil); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", rec.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.EmptyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), forward, nil)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
			if rec.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
		})
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		p  core.Vec3
		uv core.Vec2
	}{
		{core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{core.NewVec3(-1, 0, 0), core.NewVec2(0.0, 0.5)},
		{core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1.0)},
		{core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0.0)},
		{core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
	}

	for _, tt := range tests {
		uv := sphereUV(tt.p)
		if math.Abs(uv.X-tt.uv.X) > 1e-9 || math.Abs(uv.Y-tt.uv.Y) > 1e-9 {
			t.Errorf("UV of %v: expected %v, got %v", tt.p, tt.uv, uv)
		}
	}
}

func TestSphere_NegativeRadiusClamped(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -2, material.EmptyMaterial{})
	if sphere.Radius != 0 {
		t.Errorf("Expected radius clamped to 0, got %f", sphere.Radius)
	}
}

func TestMovingSphere_MatchesStaticAtSameTime(t *testing.T) {
	c1, c2 := core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0)
	moving := NewMovingSphere(c1, c2, 0.5, material.EmptyMaterial{})

	for _, time := range []float64{0, 0.25, 0.5, 1} {
		static := NewSphere(c1.Add(c2.Subtract(c1).Multiply(time)), 0.5, material.EmptyMaterial{})
		ray := core.NewRayAtTime(core.NewVec3(0.1, 2*time, 5), core.NewVec3(0, 0, -1), time)

		mRec, mHit := moving.Hit(ray, forward, nil)
		sRec, sHit := static.Hit(ray, forward, nil)
		if mHit != sHit || math.Abs(mRec.T-sRec.T) > 1e-12 || mRec.Normal.Subtract(sRec.Normal).Length() > 1e-12 {
			t.Errorf("time %f: moving (%v,%f) != static (%v,%f)", time, mHit, mRec.T, sHit, sRec.T)
		}
	}

	// Bounding box covers both endpoints
	box := moving.BoundingBox()
	if box.Y.Min > -0.5 || box.Y.Max < 2.5 {
		t.Errorf("Bounding box %v does not cover the motion", box.Y)
	}
}

func TestSphere_PDFMatchesSampling(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.EmptyMaterial{})
	origin := core.NewVec3(0, 0, 0)

	cosThetaMax := math.Sqrt(1 - 1.0/25.0)
	expected := 1 / (2 * math.Pi * (1 - cosThetaMax))

	sampler := core.NewSeededSampler(42)
	for i := 0; i < 200; i++ {
		d := sphere.Random(origin, sampler)
		pdf := sphere.PDFValue(origin, d)
		if math.Abs(pdf-expected) > 1e-9*expected {
			t.Fatalf("Sampled direction %v has density %f, expected %f", d, pdf, expected)
		}
	}

	if pdf := sphere.PDFValue(origin, core.NewVec3(0, 0, 1)); pdf != 0 {
		t.Errorf("Expected zero density away from sphere, got %f", pdf)
	}
}

func TestSphere_PDFIntegratesToOne(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, material.EmptyMaterial{})
	mean, stdErr := integrateOverSphere(sphere, core.NewVec3(0, 0, 0), 200000)
	if math.Abs(mean-1) > 5*stdErr+1e-3 {
		t.Errorf("Expected density to integrate to 1, got %f (stderr %f)", mean, stdErr)
	}
}

// integrateOverSphere estimates ∫ pdf(ω) dω over all directions from origin
func integrateOverSphere(h core.Hittable, origin core.Vec3, samples int) (mean, stdErr float64) {
	sampler := core.NewSeededSampler(7)
	values := make([]float64, samples)
	for i := range values {
		values[i] = h.PDFValue(origin, core.RandomUnitVector(sampler)) * 4 * math.Pi
	}
	mean, std := stat.MeanStdDev(values, nil)
	return mean, stat.StdErr(std, float64(samples))
}
