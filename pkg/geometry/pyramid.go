package geometry

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

// UnitPyramid is the canonical square pyramid: base corners (±0.5, -0.5,
// ±0.5) and apex (0, 0.5, 0) in object space.
type UnitPyramid struct{}

// pyramidFace is one triangle of the canonical pyramid with its outward
// normal precomputed. The base square contributes two triangles.
type pyramidFace struct {
	v0, v1, v2 math32.Vector3
	normal     math32.Vector3
}

var pyramidFaces = buildPyramidFaces()

func buildPyramidFaces() []pyramidFace {
	a := math32.Vec3(-0.5, -0.5, -0.5)
	b := math32.Vec3(0.5, -0.5, -0.5)
	c := math32.Vec3(0.5, -0.5, 0.5)
	d := math32.Vec3(-0.5, -0.5, 0.5)
	apex := math32.Vec3(0, 0.5, 0)

	// Winding chosen so every geometric normal faces outward
	tris := [][3]math32.Vector3{
		{a, b, c},
		{a, c, d},
		{b, a, apex},
		{c, b, apex},
		{d, c, apex},
		{a, d, apex},
	}

	faces := make([]pyramidFace, 0, len(tris))
	for _, tri := range tris {
		faces = append(faces, pyramidFace{
			v0:     tri[0],
			v1:     tri[1],
			v2:     tri[2],
			normal: math32.Normal(tri[0], tri[1], tri[2]),
		})
	}
	return faces
}

// Hit tests if a ray intersects the pyramid by testing each planar face,
// keeping the nearest valid hit.
func (UnitPyramid) Hit(ray core.Ray) (*core.Intersection, bool) {
	var best *core.Intersection
	for i := range pyramidFaces {
		face := &pyramidFaces[i]
		t, ok := hitTriangle(ray, face.v0, face.v1, face.v2)
		if !ok {
			continue
		}
		if best == nil || t < best.T {
			best = &core.Intersection{
				T:      t,
				Point:  ray.At(t),
				Normal: face.normal,
			}
		}
	}
	return best, best != nil
}
