package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/material"
)

func TestTranslate_MatchesMovedGeometry(t *testing.T) {
	offset := core.NewVec3(3, -1, 2)
	wrapped := NewTranslate(NewSphere(core.NewVec3(0, 0, 0), 1, material.EmptyMaterial{}), offset)
	direct := NewSphere(offset, 1, material.EmptyMaterial{})

	sampler := core.NewSeededSampler(4)
	for i := 0; i < 500; i++ {
		target := offset.Add(core.RandomVec3Range(sampler, -1.2, 1.2))
		origin := core.RandomVec3Range(sampler, -10, 10)
		ray := core.NewRay(origin, target.Subtract(origin))

		wRec, wHit := wrapped.Hit(ray, forward, nil)
		dRec, dHit := direct.Hit(ray, forward, nil)
		if wHit != dHit {
			t.Fatalf("Hit mismatch for ray %v", ray)
		}
		if wHit && (math.Abs(wRec.T-dRec.T) > 1e-9 || wRec.Point.Subtract(dRec.Point).Length() > 1e-9) {
			t.Fatalf("Translated hit %v differs from direct hit %v", wRec.Point, dRec.Point)
		}
	}
}

func TestTranslate_Composition(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), material.EmptyMaterial{})
	a, b := core.NewVec3(1, 2, 3), core.NewVec3(-4, 0.5, 1)

	nested := NewTranslate(NewTranslate(box, a), b)
	combined := NewTranslate(box, a.Add(b))

	sampler := core.NewSeededSampler(8)
	for i := 0; i < 300; i++ {
		ray := core.NewRay(core.RandomVec3Range(sampler, -10, 10), core.RandomUnitVector(sampler))
		nRec, nHit := nested.Hit(ray, forward, nil)
		cRec, cHit := combined.Hit(ray, forward, nil)
		if nHit != cHit || (nHit && nRec.Point.Subtract(cRec.Point).Length() > 1e-9) {
			t.Fatalf("Nested and combined translations disagree for ray %v", ray)
		}
	}
}

func TestRotateY_MatchesReferenceRotation(t *testing.T) {
	for _, angle := range []float64{15, 90, 180, -45, 270} {
		r := NewRotateY(NewSphere(core.NewVec3(2, 0, 0), 0.5, material.EmptyMaterial{}), angle)

		ref := r3.NewRotation(core.DegreesToRadians(angle), r3.Vec{X: 0, Y: 1, Z: 0})
		expected := ref.Rotate(r3.Vec{X: 2, Y: 0, Z: 0})

		got := r.toWorld(core.NewVec3(2, 0, 0))
		if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 || math.Abs(got.Z-expected.Z) > 1e-9 {
			t.Errorf("angle %f: expected %v, got %v", angle, expected, got)
		}

		// A ray aimed at the rotated center must hit with an outward normal pointing back at the origin
		center := core.NewVec3(expected.X, expected.Y, expected.Z)
		rec, ok := r.Hit(core.NewRay(core.Vec3{}, center), forward, nil)
		if !ok {
			t.Fatalf("angle %f: expected hit toward rotated center %v", angle, center)
		}
		if rec.Normal.Dot(center) >= 0 {
			t.Errorf("angle %f: normal %v should face the ray origin", angle, rec.Normal)
		}
		if math.Abs(rec.Point.Length()-1.5) > 1e-9 {
			t.Errorf("angle %f: expected hit at distance 1.5, got %f", angle, rec.Point.Length())
		}
	}
}

func TestRotateY_Composition(t *testing.T) {
	box := NewBox(core.NewVec3(0.5, 0, 0.5), core.NewVec3(1.5, 1, 2), material.EmptyMaterial{})
	nested := NewRotateY(NewRotateY(box, 30), 45)
	combined := NewRotateY(box, 75)

	sampler := core.NewSeededSampler(12)
	for i := 0; i < 300; i++ {
		ray := core.NewRay(core.RandomVec3Range(sampler, -5, 5), core.RandomUnitVector(sampler))
		nRec, nHit := nested.Hit(ray, forward, nil)
		cRec, cHit := combined.Hit(ray, forward, nil)
		if nHit != cHit {
			t.Fatalf("Nested and combined rotations disagree on hit for ray %v", ray)
		}
		if nHit && (nRec.Point.Subtract(cRec.Point).Length() > 1e-9 || nRec.Normal.Subtract(cRec.Normal).Length() > 1e-9) {
			t.Fatalf("Nested and combined rotations disagree: %v vs %v", nRec.Point, cRec.Point)
		}
	}
}

func TestRotateY_BoundingBoxContainsHits(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), material.EmptyMaterial{})
	rotated := NewRotateY(box, 15)
	bbox := rotated.BoundingBox()

	sampler := core.NewSeededSampler(2)
	for i := 0; i < 300; i++ {
		ray := core.NewRay(core.RandomVec3Range(sampler, -500, 500), core.RandomUnitVector(sampler))
		rec, ok := rotated.Hit(ray, forward, nil)
		if !ok {
			continue
		}
		if !bbox.X.Contains(rec.Point.X) || !bbox.Y.Contains(rec.Point.Y) || !bbox.Z.Contains(rec.Point.Z) {
			t.Fatalf("Hit point %v outside rotated bounds", rec.Point)
		}
	}
}

func TestTransform_PDFDelegation(t *testing.T) {
	light := NewQuad(core.NewVec3(-0.5, 0, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), material.EmptyMaterial{})
	moved := NewTranslate(light, core.NewVec3(0, 2, 0))
	origin := core.NewVec3(0, 0, 0)

	// Same geometry as the ceiling light in quad_test: pdf straight up is 4
	if pdf := moved.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(pdf-4) > 1e-9 {
		t.Errorf("Expected translated pdf 4, got %f", pdf)
	}

	rotated := NewRotateY(moved, 37)
	if pdf := rotated.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(pdf-4) > 1e-9 {
		t.Errorf("Expected rotation about the light's axis to keep pdf 4, got %f", pdf)
	}

	sampler := core.NewSeededSampler(3)
	for i := 0; i < 100; i++ {
		d := rotated.Random(origin, sampler)
		if _, ok := rotated.Hit(core.NewRay(origin, d), forward, nil); !ok {
			t.Fatalf("Sampled direction %v misses the transformed light", d)
		}
	}
}
