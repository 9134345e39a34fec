package transform

import "cogentcore.org/core/math32"

// Translation moves by a fixed offset. Its inverse is the opposite offset,
// so no setter on it can fail.
type Translation struct {
	offset  math32.Vector3
	matrix  math32.Matrix4
	inverse math32.Matrix4
}

// NewTranslation creates a translation by the given offset
func NewTranslation(offset math32.Vector3) *Translation {
	t := &Translation{}
	t.SetOffset(offset)
	return t
}

// Offset returns the current offset
func (t *Translation) Offset() math32.Vector3 {
	return t.offset
}

// SetOffset replaces the offset and rebuilds both matrices
func (t *Translation) SetOffset(offset math32.Vector3) {
	t.offset = offset
	t.matrix.SetTransform(offset, quatIdentity(), vecOnes())
	t.inverse.SetTransform(offset.Negate(), quatIdentity(), vecOnes())
}

// Matrix returns the forward matrix
func (t *Translation) Matrix() *math32.Matrix4 {
	return &t.matrix
}

// InverseMatrix returns the inverse matrix
func (t *Translation) InverseMatrix() *math32.Matrix4 {
	return &t.inverse
}
