package scene

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
	"github.com/raygraph/raygraph/pkg/transform"
)

// DefaultBackground is the color written where no ray hits anything
var DefaultBackground = math32.Vec3(0.1, 0.12, 0.18)

// Scene contains everything a render pass needs: the graph root, the Phong
// coefficients, and the background color for rays that miss. The tree is
// built once and treated as read-only while a frame renders; transform
// mutation is only safe between frames.
type Scene struct {
	Root       Node
	Phong      core.PhongConfig
	Background math32.Vector3
}

// NewScene creates a scene around the given root with default Phong
// coefficients and background
func NewScene(root Node) *Scene {
	return &Scene{
		Root:       root,
		Phong:      core.DefaultPhongConfig(),
		Background: DefaultBackground,
	}
}

// SceneInfo describes a built-in demo scene for listings
type SceneInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListScenes returns the built-in demo scenes in display order
func ListScenes() []SceneInfo {
	return []SceneInfo{
		{ID: "sphere", Name: "Single Sphere", Description: "One translated unit sphere with one light"},
		{ID: "siblings", Name: "Sibling Groups", Description: "Two disjoint sibling groups, one shape each"},
		{ID: "showcase", Name: "Primitive Showcase", Description: "Sphere, box, pyramid and mesh under nested transforms"},
		{ID: "mesh", Name: "Octahedron Mesh", Description: "Indexed triangle mesh with flat shading"},
	}
}

// ByName builds the named built-in scene
func ByName(name string) (*Scene, error) {
	switch name {
	case "sphere":
		return NewSphereScene(), nil
	case "siblings":
		return NewSiblingScene(), nil
	case "showcase":
		return NewShowcaseScene(), nil
	case "mesh":
		return NewMeshScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// mustRotation builds a rotation for a demo scene, where the inputs are
// constants and failure is a construction bug
func mustRotation(axis math32.Vector3, angle float32) *transform.Rotation {
	r, err := transform.NewRotation(axis, angle)
	if err != nil {
		panic(err)
	}
	return r
}

// mustScaling builds a scaling for a demo scene
func mustScaling(scale math32.Vector3) *transform.Scaling {
	s, err := transform.NewScaling(scale)
	if err != nil {
		panic(err)
	}
	return s
}

// mustSQT builds a combined transform for a demo scene
func mustSQT(pos math32.Vector3, quat math32.Quat, scale math32.Vector3) *transform.ScaleQuatTranslation {
	t, err := transform.NewScaleQuatTranslation(pos, quat, scale)
	if err != nil {
		panic(err)
	}
	return t
}
