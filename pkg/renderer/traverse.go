package renderer

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
	"github.com/raygraph/raygraph/pkg/geometry"
	"github.com/raygraph/raygraph/pkg/scene"
)

// hitter is the object-space intersection test shared by all primitives.
type hitter interface {
	Hit(ray core.Ray) (*core.Intersection, bool)
}

var (
	unitSphere  = geometry.UnitSphere{}
	unitBox     = geometry.UnitBox{}
	unitPyramid = geometry.UnitPyramid{}
)

// visit walks one node of the scene graph for the context's current pixel.
// It is the single dispatch point over the closed set of node kinds.
func (r *Renderer) visit(ctx *RenderContext, node scene.Node) error {
	switch n := node.(type) {
	case *scene.GroupNode:
		if n.Transform != nil {
			ctx.pushTransform(n.Transform.Matrix(), n.Transform.InverseMatrix())
			defer ctx.popTransform()
		}
		for _, child := range n.Children {
			if err := r.visit(ctx, child); err != nil {
				return err
			}
		}
		return nil

	case *scene.CameraNode:
		ctx.ray = cameraRay(ctx.top(), n.FOV, ctx.px, ctx.py, r.config.Width, r.config.Height)
		ctx.eye = ctx.ray.Origin
		ctx.hasRay = true
		return nil

	case *scene.LightNode:
		if !ctx.hasRay {
			return fmt.Errorf("traversal reached a light before any camera node")
		}
		ctx.addLight()
		return nil

	case *scene.SphereNode:
		return r.visitShape(ctx, unitSphere, n.Color)

	case *scene.AABoxNode:
		return r.visitShape(ctx, unitBox, n.Color)

	case *scene.PyramidNode:
		return r.visitShape(ctx, unitPyramid, n.Color)

	case *scene.MeshNode:
		if n.Mesh == nil {
			return nil
		}
		return r.visitShape(ctx, n.Mesh, n.Color)

	case *scene.TextureBoxNode, *scene.VideoBoxNode, *scene.TextBoxNode, *scene.TexturePyramidNode:
		// Recognized but not renderable geometry here; they contribute
		// nothing to the frame.
		return nil

	default:
		return fmt.Errorf("unhandled node kind %T", node)
	}
}

// visitShape intersects one primitive in object space and records the hit,
// mapped back to world space, against the context's running nearest.
func (r *Renderer) visitShape(ctx *RenderContext, shape hitter, color math32.Vector3) error {
	if !ctx.hasRay {
		return fmt.Errorf("traversal reached a shape before any camera node")
	}
	objRay := ctx.ray.MulMatrix4(ctx.topInverse())
	hit, ok := shape.Hit(objRay)
	if !ok {
		return nil
	}
	ctx.recordHit(worldIntersection(hit, ctx.top(), ctx.topInverse(), ctx.ray), color)
	return nil
}

// cameraRay builds the world-space primary ray for pixel (px, py). Rays
// pass through a 100x100 virtual plane placed along -z at the distance
// that realizes the horizontal field of view, then map to world space
// through the camera's stacked transform.
func cameraRay(forward *math32.Matrix4, fov float32, px, py, width, height int) core.Ray {
	if fov <= 0 {
		fov = scene.DefaultFOV
	}
	planeZ := -50 / math32.Tan(fov/2)
	planeX := (float32(px)+0.5)/float32(width)*100 - 50
	planeY := 50 - (float32(py)+0.5)/float32(height)*100

	origin := math32.Vector3{}.MulMatrix4AsVector4(forward, 1)
	direction := math32.Vec3(planeX, planeY, planeZ).MulMatrix4AsVector4(forward, 0)
	return core.NewRay(origin, direction)
}

// worldIntersection maps an object-space hit into world space. The point
// goes through the forward matrix; the normal goes through the transpose
// of the inverse so it stays perpendicular under non-uniform scaling; t is
// recovered as the distance from the ray origin, which is exact because
// world ray directions are unit length.
func worldIntersection(hit *core.Intersection, forward, inverse *math32.Matrix4, worldRay core.Ray) *core.Intersection {
	point := hit.Point.MulMatrix4AsVector4(forward, 1)
	normal := mulTransposeDirection(inverse, hit.Normal).Normal()
	return &core.Intersection{
		T:      point.Sub(worldRay.Origin).Length(),
		Point:  point,
		Normal: normal,
	}
}

// mulTransposeDirection applies the transpose of m to a direction: each
// output component is the direction dotted with one of m's columns, which
// sit in consecutive cells of the column-major backing array.
func mulTransposeDirection(m *math32.Matrix4, v math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		m[0]*v.X+m[1]*v.Y+m[2]*v.Z,
		m[4]*v.X+m[5]*v.Y+m[6]*v.Z,
		m[8]*v.X+m[9]*v.Y+m[10]*v.Z,
	)
}
