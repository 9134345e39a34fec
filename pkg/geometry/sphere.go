package geometry

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

// UnitSphere is the canonical sphere: radius 1, centered at the object-space
// origin. Scene transforms size and place it.
type UnitSphere struct{}

// Hit tests if a ray intersects the sphere, returning the nearest positive
// intersection. A ray starting inside still hits, at the exit point.
func (UnitSphere) Hit(ray core.Ray) (*core.Intersection, bool) {
	// Center is the origin, so the origin offset is the ray origin itself
	oc := ray.Origin

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - 1

	// Tangent or miss when the discriminant is not clearly positive
	discriminant := halfB*halfB - a*c
	if discriminant <= epsilon {
		return nil, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Try the closer root first; fall back to the farther one when the ray
	// starts inside the sphere
	root := (-halfB - sqrtD) / a
	if root < epsilon {
		root = (-halfB + sqrtD) / a
		if root < epsilon {
			return nil, false
		}
	}

	point := ray.At(root)
	return &core.Intersection{
		T:     root,
		Point: point,
		// For a unit sphere at the origin the hit point is the outward normal
		Normal: point.Normal(),
	}, true
}
