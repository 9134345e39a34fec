package core

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestIntersection_CloserThan(t *testing.T) {
	hitAt := func(tv float32) *Intersection {
		return &Intersection{T: tv, Point: math32.Vec3(0, 0, 0), Normal: math32.Vec3(0, 0, 1)}
	}

	tests := []struct {
		name     string
		it       *Intersection
		other    *Intersection
		expected bool
	}{
		{"closer wins", hitAt(1), hitAt(2), true},
		{"farther loses", hitAt(3), hitAt(2), false},
		{"equal t does not displace the incumbent", hitAt(2), hitAt(2), false},
		{"anything beats no hit", hitAt(100), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.it.CloserThan(tt.other); got != tt.expected {
				t.Errorf("CloserThan = %v, expected %v", got, tt.expected)
			}
		})
	}
}
