package geometry

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

// Mesh is an indexed triangle mesh in the owning node's local frame.
// Vertices are shared; faces are index triplets into the vertex slice.
// Triangles are shaded flat with their geometric normal, so winding decides
// which side counts as outward.
type Mesh struct {
	vertices []math32.Vector3
	faces    []int
	normals  []math32.Vector3 // one geometric normal per triangle
}

// NewMesh creates a mesh from vertices and face indices (each group of 3
// indices forms a triangle). Structurally invalid input is a construction
// bug and panics.
func NewMesh(vertices []math32.Vector3, faces []int) *Mesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3
	normals := make([]math32.Vector3, 0, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0 := faces[i*3]
		i1 := faces[i*3+1]
		i2 := faces[i*3+2]

		if i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			panic("Face index out of bounds")
		}

		normals = append(normals, math32.Normal(vertices[i0], vertices[i1], vertices[i2]))
	}

	return &Mesh{vertices: vertices, faces: faces, normals: normals}
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.faces) / 3
}

// Hit tests the ray against every triangle of the mesh and returns the
// globally nearest valid hit with that triangle's geometric normal.
func (m *Mesh) Hit(ray core.Ray) (*core.Intersection, bool) {
	var best *core.Intersection
	for i := 0; i < m.TriangleCount(); i++ {
		v0 := m.vertices[m.faces[i*3]]
		v1 := m.vertices[m.faces[i*3+1]]
		v2 := m.vertices[m.faces[i*3+2]]

		t, ok := hitTriangle(ray, v0, v1, v2)
		if !ok {
			continue
		}
		if best == nil || t < best.T {
			best = &core.Intersection{
				T:      t,
				Point:  ray.At(t),
				Normal: m.normals[i],
			}
		}
	}
	return best, best != nil
}
