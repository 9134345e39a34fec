package scene

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/transform"
)

// NewSphereScene creates the single-sphere reference scene: the camera at
// the root, one light at world (1,1,1), and a unit sphere pushed back to
// z=-5. The center ray hits it at t=4.
func NewSphereScene() *Scene {
	root := NewGroup(nil,
		NewCamera(),
		NewGroup(transform.NewTranslation(math32.Vec3(1, 1, 1)),
			NewLight(),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(0, 0, -5)),
			NewSphere(math32.Vec3(0.5, 0.3, 0.2)),
		),
	)
	return NewScene(root)
}

// NewSiblingScene creates two sibling groups whose shapes never overlap in
// any camera ray, so every pixel resolves to exactly one of them.
func NewSiblingScene() *Scene {
	root := NewGroup(nil,
		NewCamera(),
		NewGroup(transform.NewTranslation(math32.Vec3(0, 3, 0)),
			NewLight(),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(-2, 0, -6)),
			NewSphere(math32.Vec3(0.9, 0.2, 0.2)),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(2, 0, -6)),
			NewAABox(math32.Vec3(0.2, 0.9, 0.2)),
		),
	)
	return NewScene(root)
}
