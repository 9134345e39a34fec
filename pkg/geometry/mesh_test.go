package geometry

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

func quadMeshVertices() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
	}
}

func TestMesh_Hit_SingleTriangle(t *testing.T) {
	mesh := NewMesh(quadMeshVertices(), []int{0, 1, 2})
	ray := core.NewRay(math32.Vec3(0.25, 0.25, 5), math32.Vec3(0, 0, -1))

	hit, isHit := mesh.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math32.Abs(hit.T-5) > testTolerance {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	if !vecNear(hit.Normal, math32.Vec3(0, 0, 1)) {
		t.Errorf("Expected geometric normal (0,0,1), got %v", hit.Normal)
	}
	if !vecNear(hit.Point, math32.Vec3(0.25, 0.25, 0)) {
		t.Errorf("Expected hit point (0.25,0.25,0), got %v", hit.Point)
	}
}

func TestMesh_Hit_OutsideTriangle(t *testing.T) {
	mesh := NewMesh(quadMeshVertices(), []int{0, 1, 2})
	// Crosses the triangle plane beyond the hypotenuse
	ray := core.NewRay(math32.Vec3(0.75, 0.75, 5), math32.Vec3(0, 0, -1))

	hit, isHit := mesh.Hit(ray)
	if isHit {
		t.Errorf("Expected miss outside the triangle, but got hit at t=%f", hit.T)
	}
}

func TestMesh_Hit_ParallelRay(t *testing.T) {
	mesh := NewMesh(quadMeshVertices(), []int{0, 1, 2})
	// Ray lies in the triangle plane
	ray := core.NewRay(math32.Vec3(2, 2, 0), math32.Vec3(-1, 0, 0))

	hit, isHit := mesh.Hit(ray)
	if isHit {
		t.Errorf("Expected miss for in-plane ray, but got hit at t=%f", hit.T)
	}
}

func TestMesh_Hit_NearestTriangleWins(t *testing.T) {
	// Two parallel triangles; the ray must report the nearer one
	vertices := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, -2),
		math32.Vec3(1, 0, -2),
		math32.Vec3(0, 1, -2),
	}
	mesh := NewMesh(vertices, []int{0, 1, 2, 3, 4, 5})
	ray := core.NewRay(math32.Vec3(0.25, 0.25, 5), math32.Vec3(0, 0, -1))

	hit, isHit := mesh.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math32.Abs(hit.T-5) > testTolerance {
		t.Errorf("Expected the nearer triangle at t=5, got t=%f", hit.T)
	}
}

func TestMesh_TriangleCount(t *testing.T) {
	mesh := NewMesh(quadMeshVertices(), []int{0, 1, 2})
	if mesh.TriangleCount() != 1 {
		t.Errorf("Expected 1 triangle, got %d", mesh.TriangleCount())
	}
}

func TestNewMesh_InvalidFaceCount(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid face count")
		}
	}()

	NewMesh(quadMeshVertices(), []int{0, 1})
}

func TestNewMesh_IndexOutOfBounds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for out of bounds index")
		}
	}()

	NewMesh(quadMeshVertices(), []int{0, 1, 3})
}
