package transform

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Rotation rotates around an axis through the origin by an angle in radians.
// The inverse is the rotation by the opposite angle, so only a degenerate
// axis can make construction fail.
type Rotation struct {
	axis    math32.Vector3
	angle   float32
	matrix  math32.Matrix4
	inverse math32.Matrix4
}

// NewRotation creates a rotation of angle radians around axis. The axis is
// normalized; a zero axis is a configuration error.
func NewRotation(axis math32.Vector3, angle float32) (*Rotation, error) {
	r := &Rotation{}
	if err := r.SetAxisAngle(axis, angle); err != nil {
		return nil, err
	}
	return r, nil
}

// Axis returns the unit rotation axis
func (r *Rotation) Axis() math32.Vector3 {
	return r.axis
}

// Angle returns the rotation angle in radians
func (r *Rotation) Angle() float32 {
	return r.angle
}

// SetAxisAngle replaces axis and angle and rebuilds both matrices
func (r *Rotation) SetAxisAngle(axis math32.Vector3, angle float32) error {
	if axis.LengthSquared() == 0 {
		return fmt.Errorf("rotation axis must be non-zero")
	}
	r.axis = axis.Normal()
	r.SetAngle(angle)
	return nil
}

// SetAngle replaces the angle around the existing axis and rebuilds both
// matrices. Animation drives this between frames.
func (r *Rotation) SetAngle(angle float32) {
	r.angle = angle
	origin := math32.Vector3{}
	r.matrix.SetTransform(origin, math32.NewQuatAxisAngle(r.axis, angle), vecOnes())
	r.inverse.SetTransform(origin, math32.NewQuatAxisAngle(r.axis, -angle), vecOnes())
}

// Matrix returns the forward matrix
func (r *Rotation) Matrix() *math32.Matrix4 {
	return &r.matrix
}

// InverseMatrix returns the inverse matrix
func (r *Rotation) InverseMatrix() *math32.Matrix4 {
	return &r.inverse
}
