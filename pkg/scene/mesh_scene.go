package scene

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
	"github.com/raygraph/raygraph/pkg/geometry"
	"github.com/raygraph/raygraph/pkg/loaders"
	"github.com/raygraph/raygraph/pkg/transform"
)

// NewOctahedronMesh creates an octahedron spanning the unit cube, wound so
// every face normal points outward.
func NewOctahedronMesh() *geometry.Mesh {
	vertices := []math32.Vector3{
		math32.Vec3(0.5, 0, 0),  // +x
		math32.Vec3(-0.5, 0, 0), // -x
		math32.Vec3(0, 0.5, 0),  // +y
		math32.Vec3(0, -0.5, 0), // -y
		math32.Vec3(0, 0, 0.5),  // +z
		math32.Vec3(0, 0, -0.5), // -z
	}
	faces := []int{
		0, 2, 4,
		4, 2, 1,
		1, 2, 5,
		5, 2, 0,
		4, 3, 0,
		1, 3, 4,
		5, 3, 1,
		0, 3, 5,
	}
	return geometry.NewMesh(vertices, faces)
}

// NewMeshScene creates a scene around a single octahedron mesh, tilted so
// the flat-shaded faces catch the light differently.
func NewMeshScene() *Scene {
	root := NewGroup(nil,
		NewCamera(),
		NewGroup(transform.NewTranslation(math32.Vec3(2, 3, 1)),
			NewLight(),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(0, 0, -4)),
			NewGroup(mustRotation(math32.Vec3(1, 1, 0), 0.6),
				NewGroup(mustScaling(math32.Vec3(3, 3, 3)),
					NewMeshNode(NewOctahedronMesh(), math32.Vec3(0.3, 0.6, 0.9)),
				),
			),
		),
	)
	return NewScene(root)
}

// NewPLYScene loads an ASCII PLY file into a mesh node, framed and lit like
// the other demo scenes.
func NewPLYScene(path string, logger core.Logger) (*Scene, error) {
	data, err := loaders.LoadPLY(path)
	if err != nil {
		return nil, fmt.Errorf("loading mesh scene: %w", err)
	}
	mesh := geometry.NewMesh(data.Vertices, data.Faces)
	logger.Printf("Loaded %s: %d vertices, %d triangles\n", path, len(data.Vertices), mesh.TriangleCount())

	root := NewGroup(nil,
		NewCamera(),
		NewGroup(transform.NewTranslation(math32.Vec3(2, 3, 1)),
			NewLight(),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(0, 0, -4)),
			NewMeshNode(mesh, math32.Vec3(0.7, 0.7, 0.75)),
		),
	)
	return NewScene(root), nil
}
