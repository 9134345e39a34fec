package core

import "cogentcore.org/core/math32"

// Intersection records a ray hit: the parameter t along the ray (t > 0), the
// hit point, and the outward unit normal at that point. Point and Normal are
// expressed in whatever space the intersected geometry was given in; mapping
// them to world space is the caller's job.
type Intersection struct {
	T      float32
	Point  math32.Vector3
	Normal math32.Vector3
}

// CloserThan reports whether this intersection is strictly closer to the ray
// origin than other. A nil other counts as infinitely far away, so the first
// hit of a traversal always wins and later hits at exactly equal t never
// displace an earlier one.
func (it *Intersection) CloserThan(other *Intersection) bool {
	if other == nil {
		return true
	}
	return it.T < other.T
}
