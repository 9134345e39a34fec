package renderer

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

// RenderContext carries the mutable state of a single pixel's walk through
// the scene graph: the transform stacks, the lights seen so far, the camera
// ray once one is established, and the nearest intersection. Each worker
// owns one context and reuses it across pixels via Reset.
type RenderContext struct {
	matrices []math32.Matrix4
	inverses []math32.Matrix4
	lights   []math32.Vector3

	px, py int

	ray    core.Ray
	eye    math32.Vector3
	hasRay bool

	best      *core.Intersection
	bestColor math32.Vector3
}

// NewRenderContext creates a context with identity at the bottom of both
// transform stacks.
func NewRenderContext() *RenderContext {
	rc := &RenderContext{
		matrices: make([]math32.Matrix4, 1, 16),
		inverses: make([]math32.Matrix4, 1, 16),
		lights:   make([]math32.Vector3, 0, 8),
	}
	rc.matrices[0].SetIdentity()
	rc.inverses[0].SetIdentity()
	return rc
}

// Reset prepares the context for pixel (px, py). The stacks shrink back to
// their identity bottoms without reallocating.
func (rc *RenderContext) Reset(px, py int) {
	rc.matrices = rc.matrices[:1]
	rc.inverses = rc.inverses[:1]
	rc.lights = rc.lights[:0]
	rc.px = px
	rc.py = py
	rc.hasRay = false
	rc.best = nil
	rc.bestColor = math32.Vector3{}
}

// Depth returns the current height of the transform stacks. Outside a walk
// it is always 1.
func (rc *RenderContext) Depth() int {
	return len(rc.matrices)
}

func (rc *RenderContext) top() *math32.Matrix4 {
	return &rc.matrices[len(rc.matrices)-1]
}

func (rc *RenderContext) topInverse() *math32.Matrix4 {
	return &rc.inverses[len(rc.inverses)-1]
}

// pushTransform composes a node's transform onto both stacks. The forward
// matrix right-multiplies the current top; the inverse composes in the
// reversed order so the stacked inverse undoes the stacked forward.
func (rc *RenderContext) pushTransform(m, inv *math32.Matrix4) {
	var child, childInv math32.Matrix4
	child.MulMatrices(rc.top(), m)
	childInv.MulMatrices(inv, rc.topInverse())
	rc.matrices = append(rc.matrices, child)
	rc.inverses = append(rc.inverses, childInv)
}

func (rc *RenderContext) popTransform() {
	rc.matrices = rc.matrices[:len(rc.matrices)-1]
	rc.inverses = rc.inverses[:len(rc.inverses)-1]
}

// addLight records a light's world-space position, the origin of the
// light's local frame under the current stacked transform.
func (rc *RenderContext) addLight() {
	rc.lights = append(rc.lights, math32.Vector3{}.MulMatrix4AsVector4(rc.top(), 1))
}

// recordHit keeps the intersection if it is strictly nearer than the
// current best. Ties keep the earlier hit, so traversal order decides
// between coincident surfaces.
func (rc *RenderContext) recordHit(it *core.Intersection, color math32.Vector3) {
	if it.CloserThan(rc.best) {
		rc.best = it
		rc.bestColor = color
	}
}
