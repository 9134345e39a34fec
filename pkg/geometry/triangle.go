// Package geometry provides the canonical unit primitives and the indexed
// triangle mesh that scene shape nodes are intersected against. All tests
// run in the primitive's own object space; callers transform rays in and
// hit data out.
package geometry

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

// epsilon bounds the degenerate cases: determinants and discriminants below
// it count as parallel or tangent misses, and hits with t below it are
// behind the ray origin.
const epsilon = 1e-5

// hitTriangle tests the ray against one triangle using the Möller-Trumbore
// algorithm and returns the ray parameter of the hit. A ray parallel to the
// triangle plane is a miss, never a division by zero.
func hitTriangle(ray core.Ray, v0, v1, v2 math32.Vector3) (float32, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Determinant near zero: ray lies in the triangle plane
	if a > -epsilon && a < epsilon {
		return 0, false
	}

	f := 1 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t < epsilon {
		return 0, false
	}
	return t, true
}
