package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Z cross X", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"Parallel vectors", NewVec3(2, 2, 2), NewVec3(1, 1, 1), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestReflect(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	incoming := NewVec3(1, -1, 0)
	reflected := Reflect(incoming, normal)

	expected := NewVec3(1, 1, 0)
	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	t.Run("Normal incidence passes straight through", func(t *testing.T) {
		refracted := Refract(NewVec3(0, -1, 0), normal, 1.0/1.5)
		if refracted.Subtract(NewVec3(0, -1, 0)).Length() > 1e-12 {
			t.Errorf("Expected straight transmission, got %v", refracted)
		}
	})

	t.Run("Snell's law holds at 45 degrees", func(t *testing.T) {
		incoming := NewVec3(1, -1, 0).Normalize()
		eta := 1.0 / 1.5
		refracted := Refract(incoming, normal, eta)

		sinIn := math.Abs(incoming.X)
		sinOut := math.Abs(refracted.Normalize().X)
		if math.Abs(sinOut-eta*sinIn) > 1e-9 {
			t.Errorf("Expected sin(out)=%f, got %f", eta*sinIn, sinOut)
		}
		if math.Abs(refracted.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit refracted direction, got length %f", refracted.Length())
		}
	})
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if v.Axis(axis) != expected {
			t.Errorf("Axis(%d): expected %f, got %f", axis, expected, v.Axis(axis))
		}
	}
}
