// Package scene defines the node tree a render pass walks: group nodes
// carrying transforms over ordered children, leaf nodes for the camera,
// point lights and shaped objects, and the named demo scenes the CLI, web
// server and viewer expose.
package scene

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/geometry"
	"github.com/raygraph/raygraph/pkg/transform"
)

// DefaultFOV is the horizontal field of view used when a camera does not set
// its own, in radians.
const DefaultFOV = math32.Pi / 3

// Node is the closed set of scene graph node kinds. The renderer dispatches
// on the concrete type; because nothing outside this package can add a kind,
// a traversal switch covering these types is exhaustive.
type Node interface {
	isNode()
}

// GroupNode is an interior node: a transform applied to an ordered list of
// children. Every child has exactly one parent and the graph must stay an
// acyclic tree; the traversal assumes this rather than checking it, since a
// cycle would recurse without bound.
type GroupNode struct {
	Transform transform.Transform // nil means identity
	Children  []Node
}

// NewGroup creates a group with the given transform and children. A nil
// transform leaves the parent frame unchanged.
func NewGroup(t transform.Transform, children ...Node) *GroupNode {
	return &GroupNode{Transform: t, Children: children}
}

// Add appends children in traversal order
func (g *GroupNode) Add(children ...Node) {
	g.Children = append(g.Children, children...)
}

// CameraNode marks where rays originate: the accumulated transform carries
// its pinhole to world space. FOV is the horizontal field of view in
// radians; zero means DefaultFOV.
type CameraNode struct {
	FOV float32
}

// NewCamera creates a camera with the default field of view
func NewCamera() *CameraNode {
	return &CameraNode{FOV: DefaultFOV}
}

// LightNode is a point light at the accumulated transform's origin
type LightNode struct{}

// NewLight creates a point light
func NewLight() *LightNode {
	return &LightNode{}
}

// SphereNode is the canonical unit sphere with a flat material color
type SphereNode struct {
	Color math32.Vector3
}

// NewSphere creates a sphere node with the given color
func NewSphere(color math32.Vector3) *SphereNode {
	return &SphereNode{Color: color}
}

// AABoxNode is the canonical axis-aligned unit box with a flat material
// color
type AABoxNode struct {
	Color math32.Vector3
}

// NewAABox creates an axis-aligned box node with the given color
func NewAABox(color math32.Vector3) *AABoxNode {
	return &AABoxNode{Color: color}
}

// PyramidNode is the canonical square pyramid with a flat material color
type PyramidNode struct {
	Color math32.Vector3
}

// NewPyramid creates a pyramid node with the given color
func NewPyramid(color math32.Vector3) *PyramidNode {
	return &PyramidNode{Color: color}
}

// MeshNode is a custom shape: an indexed triangle mesh in the node's local
// frame, with a flat material color. The node owns its mesh.
type MeshNode struct {
	Color math32.Vector3
	Mesh  *geometry.Mesh
}

// NewMeshNode creates a custom shape node around the given mesh
func NewMeshNode(mesh *geometry.Mesh, color math32.Vector3) *MeshNode {
	return &MeshNode{Mesh: mesh, Color: color}
}

// TextureBoxNode is a box surface mapped with an image. The ray tracing path
// recognizes it but intentionally contributes no geometry or color; Source
// is carried for the rasterization backend.
type TextureBoxNode struct {
	Source string
}

// NewTextureBox creates a texture-mapped box placeholder
func NewTextureBox(source string) *TextureBoxNode {
	return &TextureBoxNode{Source: source}
}

// VideoBoxNode is a box surface mapped with a video stream. Recognized,
// contributes nothing; Source is carried for the rasterization backend.
type VideoBoxNode struct {
	Source string
}

// NewVideoBox creates a video-mapped box placeholder
func NewVideoBox(source string) *VideoBoxNode {
	return &VideoBoxNode{Source: source}
}

// TextBoxNode is a box surface carrying rendered text. Recognized,
// contributes nothing; Text is carried for the rasterization backend.
type TextBoxNode struct {
	Text string
}

// NewTextBox creates a text-mapped box placeholder
func NewTextBox(text string) *TextBoxNode {
	return &TextBoxNode{Text: text}
}

// TexturePyramidNode is a pyramid surface mapped with an image. Recognized,
// contributes nothing; Source is carried for the rasterization backend.
type TexturePyramidNode struct {
	Source string
}

// NewTexturePyramid creates a texture-mapped pyramid placeholder
func NewTexturePyramid(source string) *TexturePyramidNode {
	return &TexturePyramidNode{Source: source}
}

func (*GroupNode) isNode()          {}
func (*CameraNode) isNode()         {}
func (*LightNode) isNode()          {}
func (*SphereNode) isNode()         {}
func (*AABoxNode) isNode()          {}
func (*PyramidNode) isNode()        {}
func (*MeshNode) isNode()           {}
func (*TextureBoxNode) isNode()     {}
func (*VideoBoxNode) isNode()       {}
func (*TextBoxNode) isNode()        {}
func (*TexturePyramidNode) isNode() {}
