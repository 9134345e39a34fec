package transform

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// ScaleQuatTranslation is the combined form: scale first, then rotate by a
// quaternion, then translate. Its inverse comes from a full matrix
// inversion, since scale and rotation do not commute for non-uniform scale.
type ScaleQuatTranslation struct {
	pos     math32.Vector3
	quat    math32.Quat
	scale   math32.Vector3
	matrix  math32.Matrix4
	inverse math32.Matrix4
}

// NewScaleQuatTranslation creates the combined transform. A nil-rotation
// quaternion is replaced by the identity; a non-invertible combination (any
// zero scale component) is a configuration error.
func NewScaleQuatTranslation(pos math32.Vector3, quat math32.Quat, scale math32.Vector3) (*ScaleQuatTranslation, error) {
	t := &ScaleQuatTranslation{}
	if quat.IsNil() {
		quat.SetIdentity()
	}
	if err := t.update(pos, quat, scale); err != nil {
		return nil, err
	}
	return t, nil
}

// Pos returns the translation component
func (t *ScaleQuatTranslation) Pos() math32.Vector3 {
	return t.pos
}

// Quat returns the rotation component
func (t *ScaleQuatTranslation) Quat() math32.Quat {
	return t.quat
}

// Scale returns the scale component
func (t *ScaleQuatTranslation) Scale() math32.Vector3 {
	return t.scale
}

// SetPos replaces the translation component and rebuilds both matrices
func (t *ScaleQuatTranslation) SetPos(pos math32.Vector3) error {
	return t.update(pos, t.quat, t.scale)
}

// SetQuat replaces the rotation component and rebuilds both matrices
func (t *ScaleQuatTranslation) SetQuat(quat math32.Quat) error {
	return t.update(t.pos, quat, t.scale)
}

// SetScale replaces the scale component and rebuilds both matrices
func (t *ScaleQuatTranslation) SetScale(scale math32.Vector3) error {
	return t.update(t.pos, t.quat, scale)
}

// update recomputes the matrix pair and commits fields and matrices together
// only on success, so a rejected mutation leaves the transform untouched.
func (t *ScaleQuatTranslation) update(pos math32.Vector3, quat math32.Quat, scale math32.Vector3) error {
	m := math32.Matrix4{}
	m.SetTransform(pos, quat, scale)
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("transform with scale %v is not invertible: %w", scale, err)
	}
	t.pos, t.quat, t.scale = pos, quat, scale
	t.matrix = m
	t.inverse = *inv
	return nil
}

// Matrix returns the forward matrix
func (t *ScaleQuatTranslation) Matrix() *math32.Matrix4 {
	return &t.matrix
}

// InverseMatrix returns the inverse matrix
func (t *ScaleQuatTranslation) InverseMatrix() *math32.Matrix4 {
	return &t.inverse
}
