package core

import "cogentcore.org/core/math32"

// Ray represents a ray with an origin point and a unit direction
type Ray struct {
	Origin    math32.Vector3
	Direction math32.Vector3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction math32.Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normal()}
}

// At returns the point along the ray at parameter t
func (r Ray) At(t float32) math32.Vector3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// MulMatrix4 returns the ray transformed by m. The origin is transformed as
// a point (w=1), the direction as a direction (w=0) and renormalized, so the
// result satisfies the unit-direction invariant.
func (r Ray) MulMatrix4(m *math32.Matrix4) Ray {
	return Ray{
		Origin:    r.Origin.MulMatrix4AsVector4(m, 1),
		Direction: r.Direction.MulMatrix4AsVector4(m, 0).Normal(),
	}
}
