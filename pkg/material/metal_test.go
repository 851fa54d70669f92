package material

import (
	"testing"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)

	rayIn := core.NewRayAtTime(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize(), 0.25)
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, core.NewSeededSampler(42))
	if !didScatter {
		t.Fatal("Metal should scatter")
	}
	if !scatter.SkipPDF {
		t.Error("Metal should skip PDF sampling")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.SkipPDFRay.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if scatter.SkipPDFRay.Time != rayIn.Time {
		t.Errorf("Scattered ray should keep time %f, got %f", rayIn.Time, scatter.SkipPDFRay.Time)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionAbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	// Grazing ray so fuzz frequently pushes the reflection under the surface
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0).Normalize())
	hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0)}

	sampler := core.NewSeededSampler(11)
	absorbed := 0
	for i := 0; i < 500; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, sampler)
		if !ok {
			absorbed++
			continue
		}
		if scatter.SkipPDFRay.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered ray %v below surface was not absorbed", scatter.SkipPDFRay.Direction)
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
}
