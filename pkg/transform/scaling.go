package transform

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Scaling scales each axis independently. A zero scale component collapses
// the matrix and cannot be inverted, so construction and setters report it
// as a configuration error instead of letting NaNs reach the renderer.
type Scaling struct {
	scale   math32.Vector3
	matrix  math32.Matrix4
	inverse math32.Matrix4
}

// NewScaling creates a scaling by the given per-axis factors
func NewScaling(scale math32.Vector3) (*Scaling, error) {
	s := &Scaling{}
	if err := s.SetScale(scale); err != nil {
		return nil, err
	}
	return s, nil
}

// Scale returns the current per-axis factors
func (s *Scaling) Scale() math32.Vector3 {
	return s.scale
}

// SetScale replaces the factors and rebuilds both matrices
func (s *Scaling) SetScale(scale math32.Vector3) error {
	m := math32.Matrix4{}
	m.SetTransform(math32.Vector3{}, quatIdentity(), scale)
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("scaling by %v is not invertible: %w", scale, err)
	}
	s.scale = scale
	s.matrix = m
	s.inverse = *inv
	return nil
}

// Matrix returns the forward matrix
func (s *Scaling) Matrix() *math32.Matrix4 {
	return &s.matrix
}

// InverseMatrix returns the inverse matrix
func (s *Scaling) InverseMatrix() *math32.Matrix4 {
	return &s.inverse
}
