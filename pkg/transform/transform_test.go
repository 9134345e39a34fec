package transform

import (
	"testing"

	"cogentcore.org/core/math32"
)

const testTolerance = 1e-5

// checkIdentityProduct verifies matrix times inverse is identity within
// tolerance, the consistency every variant must keep through mutations.
func checkIdentityProduct(t *testing.T, tr Transform) {
	t.Helper()
	var product math32.Matrix4
	product.MulMatrices(tr.Matrix(), tr.InverseMatrix())
	identity := math32.Identity4()
	for i := 0; i < 16; i++ {
		if math32.Abs(product[i]-identity[i]) > testTolerance {
			t.Errorf("matrix times inverse differs from identity at element %d: got %f", i, product[i])
			return
		}
	}
}

func vecNear(a, b math32.Vector3) bool {
	return math32.Abs(a.X-b.X) < testTolerance &&
		math32.Abs(a.Y-b.Y) < testTolerance &&
		math32.Abs(a.Z-b.Z) < testTolerance
}

func TestTranslation(t *testing.T) {
	tr := NewTranslation(math32.Vec3(1, -2, 3))
	checkIdentityProduct(t, tr)

	moved := math32.Vec3(0, 0, 0).MulMatrix4AsVector4(tr.Matrix(), 1)
	if !vecNear(moved, math32.Vec3(1, -2, 3)) {
		t.Errorf("Expected origin to move to (1,-2,3), got %v", moved)
	}

	back := moved.MulMatrix4AsVector4(tr.InverseMatrix(), 1)
	if !vecNear(back, math32.Vec3(0, 0, 0)) {
		t.Errorf("Expected inverse to return to origin, got %v", back)
	}

	tr.SetOffset(math32.Vec3(-7, 0, 0.5))
	checkIdentityProduct(t, tr)
	if !vecNear(tr.Offset(), math32.Vec3(-7, 0, 0.5)) {
		t.Errorf("Expected offset (-7,0,0.5), got %v", tr.Offset())
	}
}

func TestTranslation_DirectionUnaffected(t *testing.T) {
	tr := NewTranslation(math32.Vec3(10, 10, 10))
	dir := math32.Vec3(0, 0, -1).MulMatrix4AsVector4(tr.Matrix(), 0)
	if !vecNear(dir, math32.Vec3(0, 0, -1)) {
		t.Errorf("Expected direction unchanged by translation, got %v", dir)
	}
}

func TestRotation(t *testing.T) {
	rot, err := NewRotation(math32.Vec3(0, 1, 0), math32.Pi/2)
	if err != nil {
		t.Fatalf("NewRotation failed: %v", err)
	}
	checkIdentityProduct(t, rot)

	rotated := math32.Vec3(1, 0, 0).MulMatrix4AsVector4(rot.Matrix(), 0)
	if !vecNear(rotated, math32.Vec3(0, 0, -1)) {
		t.Errorf("Expected (1,0,0) rotated to (0,0,-1), got %v", rotated)
	}

	rot.SetAngle(math32.Pi / 4)
	checkIdentityProduct(t, rot)
	if math32.Abs(rot.Angle()-math32.Pi/4) > testTolerance {
		t.Errorf("Expected angle %f, got %f", math32.Pi/4, rot.Angle())
	}
}

func TestRotation_NormalizesAxis(t *testing.T) {
	rot, err := NewRotation(math32.Vec3(0, 5, 0), math32.Pi/3)
	if err != nil {
		t.Fatalf("NewRotation failed: %v", err)
	}
	if math32.Abs(rot.Axis().Length()-1) > testTolerance {
		t.Errorf("Expected unit axis, got length %f", rot.Axis().Length())
	}
}

func TestRotation_ZeroAxis(t *testing.T) {
	if _, err := NewRotation(math32.Vec3(0, 0, 0), 1); err == nil {
		t.Error("Expected error for zero rotation axis, got none")
	}
}

func TestScaling(t *testing.T) {
	sc, err := NewScaling(math32.Vec3(2, 3, 4))
	if err != nil {
		t.Fatalf("NewScaling failed: %v", err)
	}
	checkIdentityProduct(t, sc)

	scaled := math32.Vec3(1, 1, 1).MulMatrix4AsVector4(sc.Matrix(), 1)
	if !vecNear(scaled, math32.Vec3(2, 3, 4)) {
		t.Errorf("Expected (1,1,1) scaled to (2,3,4), got %v", scaled)
	}

	if err := sc.SetScale(math32.Vec3(0.5, 0.5, 0.5)); err != nil {
		t.Fatalf("SetScale failed: %v", err)
	}
	checkIdentityProduct(t, sc)
}

func TestScaling_ZeroComponent(t *testing.T) {
	if _, err := NewScaling(math32.Vec3(1, 0, 1)); err == nil {
		t.Error("Expected error for zero scale component, got none")
	}

	sc, err := NewScaling(math32.Vec3(2, 2, 2))
	if err != nil {
		t.Fatalf("NewScaling failed: %v", err)
	}
	if err := sc.SetScale(math32.Vec3(0, 1, 1)); err == nil {
		t.Error("Expected error for zero scale mutation, got none")
	}
	// rejected mutation leaves the previous consistent pair in place
	checkIdentityProduct(t, sc)
	if !vecNear(sc.Scale(), math32.Vec3(2, 2, 2)) {
		t.Errorf("Expected scale unchanged after rejected mutation, got %v", sc.Scale())
	}
}

func TestScaleQuatTranslation(t *testing.T) {
	quat := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/6)
	sqt, err := NewScaleQuatTranslation(math32.Vec3(1, 2, 3), quat, math32.Vec3(2, 1, 0.5))
	if err != nil {
		t.Fatalf("NewScaleQuatTranslation failed: %v", err)
	}
	checkIdentityProduct(t, sqt)

	if err := sqt.SetPos(math32.Vec3(-1, 0, 0)); err != nil {
		t.Fatalf("SetPos failed: %v", err)
	}
	checkIdentityProduct(t, sqt)

	if err := sqt.SetQuat(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi/3)); err != nil {
		t.Fatalf("SetQuat failed: %v", err)
	}
	checkIdentityProduct(t, sqt)

	if err := sqt.SetScale(math32.Vec3(3, 3, 3)); err != nil {
		t.Fatalf("SetScale failed: %v", err)
	}
	checkIdentityProduct(t, sqt)
}

func TestScaleQuatTranslation_ZeroScale(t *testing.T) {
	var quat math32.Quat
	quat.SetIdentity()
	if _, err := NewScaleQuatTranslation(math32.Vec3(0, 0, 0), quat, math32.Vec3(1, 1, 0)); err == nil {
		t.Error("Expected error for zero scale component, got none")
	}
}

func TestScaleQuatTranslation_NilQuatBecomesIdentity(t *testing.T) {
	sqt, err := NewScaleQuatTranslation(math32.Vec3(4, 0, 0), math32.Quat{}, math32.Vec3(1, 1, 1))
	if err != nil {
		t.Fatalf("NewScaleQuatTranslation failed: %v", err)
	}
	moved := math32.Vec3(0, 0, 0).MulMatrix4AsVector4(sqt.Matrix(), 1)
	if !vecNear(moved, math32.Vec3(4, 0, 0)) {
		t.Errorf("Expected pure translation to (4,0,0), got %v", moved)
	}
}
