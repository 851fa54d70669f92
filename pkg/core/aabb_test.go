package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	forward := NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name     string
		ray      Ray
		rayT     Interval
		expected bool
	}{
		{"Straight through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), forward, true},
		{"Negative direction", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), forward, true},
		{"Pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), forward, false},
		{"Parallel miss", NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)), forward, false},
		{"Diagonal hit", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), forward, true},
		{"Interval ends before box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), NewInterval(0.001, 3), false},
		{"Origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(0.3, -0.2, 1)), forward, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.rayT); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_PadsDegenerateAxes(t *testing.T) {
	// A zero-thickness box in Z, like an axis-aligned quad
	box := NewAABBFromPoints(NewVec3(0, 0, 5), NewVec3(1, 1, 5))
	if box.Z.Size() < minAABBExtent {
		t.Fatalf("Expected Z axis padded to at least %g, got %g", minAABBExtent, box.Z.Size())
	}

	ray := NewRay(NewVec3(0.5, 0.5, 0), NewVec3(0, 0, 1))
	if !box.Hit(ray, NewInterval(0.001, math.Inf(1))) {
		t.Error("Expected ray to hit padded flat box")
	}
}

func TestAABB_UnionEnclosesChildren(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(-2, 0.5, 3), NewVec3(-1, 4, 5))
	u := NewAABBUnion(a, b)

	for _, child := range []AABB{a, b} {
		for axis := 0; axis < 3; axis++ {
			ui, ci := u.AxisInterval(axis), child.AxisInterval(axis)
			if ui.Min > ci.Min || ui.Max < ci.Max {
				t.Errorf("Axis %d: union [%f,%f] does not enclose [%f,%f]", axis, ui.Min, ui.Max, ci.Min, ci.Max)
			}
		}
	}

	// Union with the empty box leaves a box unchanged
	if NewAABBUnion(EmptyAABB, a) != a {
		t.Error("Expected union with empty box to be the identity")
	}
}

func TestAABB_Offset(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 2, 3)).Offset(NewVec3(10, 20, 30))
	expected := NewAABBFromPoints(NewVec3(10, 20, 30), NewVec3(11, 22, 33))
	if box != expected {
		t.Errorf("Expected offset box %+v, got %+v", expected, box)
	}
}
