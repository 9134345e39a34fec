// Package transform provides the affine transformations a scene graph hangs
// on its group nodes. Every transformation carries both its forward matrix
// and the precomputed inverse; setters rebuild the two together so they can
// never drift apart between frames.
package transform

import "cogentcore.org/core/math32"

// Transform is the interface shared by all transformation variants. Matrix
// returns the forward (local to parent) matrix and InverseMatrix its inverse.
// The returned pointers stay valid across setter calls and always refer to a
// consistent pair.
type Transform interface {
	Matrix() *math32.Matrix4
	InverseMatrix() *math32.Matrix4
}

func quatIdentity() math32.Quat {
	var q math32.Quat
	q.SetIdentity()
	return q
}

func vecOnes() math32.Vector3 {
	return math32.Vec3(1, 1, 1)
}
