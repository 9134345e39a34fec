package geometry

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

// UnitBox is the canonical axis-aligned box spanning [-0.5, 0.5] along each
// axis in object space.
type UnitBox struct{}

// Hit tests if a ray intersects the box using the slab method, tracking the
// face crossed at each interval bound so the hit carries an outward normal.
// A ray starting inside hits the exit face.
func (UnitBox) Hit(ray core.Ray) (*core.Intersection, bool) {
	const half = 0.5

	tMin := -math32.Infinity
	tMax := math32.Infinity
	enterAxis, exitAxis := -1, -1

	for axis := 0; axis < 3; axis++ {
		var origin, direction float32

		switch axis {
		case 0:
			origin = ray.Origin.X
			direction = ray.Direction.X
		case 1:
			origin = ray.Origin.Y
			direction = ray.Direction.Y
		case 2:
			origin = ray.Origin.Z
			direction = ray.Direction.Z
		}

		// Ray parallel to this slab: miss unless the origin lies inside it
		if math32.Abs(direction) < epsilon {
			if origin < -half || origin > half {
				return nil, false
			}
			continue
		}

		invDirection := 1 / direction
		t1 := (-half - origin) * invDirection
		t2 := (half - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
			enterAxis = axis
		}
		if t2 < tMax {
			tMax = t2
			exitAxis = axis
		}

		// Empty interval: the slabs do not overlap along the ray
		if tMin > tMax {
			return nil, false
		}
	}

	// Entirely behind the ray origin
	if tMax < epsilon {
		return nil, false
	}

	t := tMin
	axis := enterAxis
	if tMin < epsilon {
		// Origin inside the box: report the exit face
		t = tMax
		axis = exitAxis
	}
	if axis < 0 {
		return nil, false
	}

	point := ray.At(t)
	return &core.Intersection{
		T:      t,
		Point:  point,
		Normal: boxFaceNormal(point, axis),
	}, true
}

// boxFaceNormal returns the outward normal of the face containing the hit
// point along the given axis, by the sign of the point's coordinate there.
func boxFaceNormal(point math32.Vector3, axis int) math32.Vector3 {
	switch axis {
	case 0:
		if point.X > 0 {
			return math32.Vec3(1, 0, 0)
		}
		return math32.Vec3(-1, 0, 0)
	case 1:
		if point.Y > 0 {
			return math32.Vec3(0, 1, 0)
		}
		return math32.Vec3(0, -1, 0)
	default:
		if point.Z > 0 {
			return math32.Vec3(0, 0, 1)
		}
		return math32.Vec3(0, 0, -1)
	}
}
