package scene

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/transform"
)

// NewShowcaseScene creates a scene exercising every node kind and transform
// variant: sphere, box, pyramid and mesh arranged on a spinning stage, plus
// the placeholder surface nodes that contribute nothing.
func NewShowcaseScene() *Scene {
	s, _ := NewSpinningScene()
	return s
}

// NewSpinningScene creates the showcase scene and also returns the stage
// rotation, so a caller can animate the stage by mutating its angle between
// frames.
func NewSpinningScene() (*Scene, *transform.Rotation) {
	spin := mustRotation(math32.Vec3(0, 1, 0), 0.5)

	stage := NewGroup(spin,
		NewGroup(transform.NewTranslation(math32.Vec3(-2.2, 0, 0)),
			NewGroup(mustScaling(math32.Vec3(1.2, 1.2, 1.2)),
				NewSphere(math32.Vec3(0.9, 0.25, 0.2)),
			),
		),
		NewGroup(mustSQT(
			math32.Vec3(0, 0, 0),
			math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi/6),
			math32.Vec3(1, 1.5, 1),
		),
			NewAABox(math32.Vec3(0.2, 0.55, 0.9)),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(2.2, -0.5, 0)),
			NewGroup(mustScaling(math32.Vec3(1.4, 2, 1.4)),
				NewPyramid(math32.Vec3(0.95, 0.8, 0.3)),
			),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(0, 2, 0)),
			NewMeshNode(NewOctahedronMesh(), math32.Vec3(0.6, 0.3, 0.85)),
		),
		// Floor slab under the arrangement
		NewGroup(transform.NewTranslation(math32.Vec3(0, -1.8, 0)),
			NewGroup(mustScaling(math32.Vec3(7, 0.15, 7)),
				NewAABox(math32.Vec3(0.45, 0.45, 0.5)),
			),
		),
	)

	root := NewGroup(nil,
		NewCamera(),
		NewGroup(transform.NewTranslation(math32.Vec3(2, 4, 3)),
			NewLight(),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(-3, 3, 1)),
			NewLight(),
		),
		NewGroup(transform.NewTranslation(math32.Vec3(0, 0, -7)),
			stage,
		),
		// Surfaces handled by the rasterization backend; inert here
		NewTextureBox("textures/marble.png"),
		NewVideoBox("media/intro.mp4"),
		NewTextBox("raygraph"),
		NewTexturePyramid("textures/brick.png"),
	)

	return NewScene(root), spin
}
