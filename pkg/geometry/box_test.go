package geometry

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

func TestUnitBox_Hit_EachFace(t *testing.T) {
	tests := []struct {
		name           string
		origin         math32.Vector3
		direction      math32.Vector3
		expectedT      float32
		expectedNormal math32.Vector3
	}{
		{"+x face", math32.Vec3(5, 0, 0), math32.Vec3(-1, 0, 0), 4.5, math32.Vec3(1, 0, 0)},
		{"-x face", math32.Vec3(-5, 0, 0), math32.Vec3(1, 0, 0), 4.5, math32.Vec3(-1, 0, 0)},
		{"+y face", math32.Vec3(0, 2, 0), math32.Vec3(0, -1, 0), 1.5, math32.Vec3(0, 1, 0)},
		{"-y face", math32.Vec3(0, -2, 0), math32.Vec3(0, 1, 0), 1.5, math32.Vec3(0, -1, 0)},
		{"+z face", math32.Vec3(0, 0, 3), math32.Vec3(0, 0, -1), 2.5, math32.Vec3(0, 0, 1)},
		{"-z face", math32.Vec3(0, 0, -3), math32.Vec3(0, 0, 1), 2.5, math32.Vec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, isHit := UnitBox{}.Hit(ray)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math32.Abs(hit.T-tt.expectedT) > testTolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !vecNear(hit.Normal, tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestUnitBox_Hit_Miss(t *testing.T) {
	// Parallel to the z axis but outside the x slab
	ray := core.NewRay(math32.Vec3(1, 0, 5), math32.Vec3(0, 0, -1))

	hit, isHit := UnitBox{}.Hit(ray)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestUnitBox_Hit_BehindOrigin(t *testing.T) {
	ray := core.NewRay(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 1))

	hit, isHit := UnitBox{}.Hit(ray)
	if isHit {
		t.Errorf("Expected miss for box behind origin, but got hit at t=%f", hit.T)
	}
}

func TestUnitBox_Hit_FromInside(t *testing.T) {
	ray := core.NewRay(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0))

	hit, isHit := UnitBox{}.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if math32.Abs(hit.T-0.5) > testTolerance {
		t.Errorf("Expected exit at t=0.5, got t=%f", hit.T)
	}
	if !vecNear(hit.Normal, math32.Vec3(1, 0, 0)) {
		t.Errorf("Expected outward normal (1,0,0), got %v", hit.Normal)
	}
}

func TestUnitBox_Hit_OffCenter(t *testing.T) {
	ray := core.NewRay(math32.Vec3(5, 0.25, -0.25), math32.Vec3(-1, 0, 0))

	hit, isHit := UnitBox{}.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedPoint := math32.Vec3(0.5, 0.25, -0.25)
	if !vecNear(hit.Point, expectedPoint) {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
	if !vecNear(hit.Normal, math32.Vec3(1, 0, 0)) {
		t.Errorf("Expected normal (1,0,0), got %v", hit.Normal)
	}
}

func TestUnitBox_Hit_ParallelInsideSlab(t *testing.T) {
	// Parallel to the x and y slabs with the origin inside both: still hits
	ray := core.NewRay(math32.Vec3(0.4, -0.4, 8), math32.Vec3(0, 0, -1))

	hit, isHit := UnitBox{}.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math32.Abs(hit.T-7.5) > testTolerance {
		t.Errorf("Expected t=7.5, got t=%f", hit.T)
	}
}
