package renderer

import (
	"cogentcore.org/core/math32"

	"github.com/raygraph/raygraph/pkg/core"
)

// Shade evaluates the Phong model at an intersection: an ambient term plus
// diffuse and specular contributions from every light, with no attenuation
// or shadowing. Components may exceed 1; callers clamp when writing the
// raster.
func Shade(color math32.Vector3, hit *core.Intersection, lights []math32.Vector3, phong core.PhongConfig, eye math32.Vector3) math32.Vector3 {
	out := color.MulScalar(phong.Ambient)
	viewDir := eye.Sub(hit.Point).Normal()

	for _, light := range lights {
		lightDir := light.Sub(hit.Point).Normal()

		nDotL := hit.Normal.Dot(lightDir)
		if nDotL > 0 {
			out = out.Add(color.MulScalar(phong.Diffuse * nDotL))
		}

		reflectDir := hit.Normal.MulScalar(2 * nDotL).Sub(lightDir)
		rDotV := reflectDir.Dot(viewDir)
		if rDotV > 0 {
			out = out.Add(color.MulScalar(phong.Specular * math32.Pow(rDotV, phong.Shininess)))
		}
	}
	return out
}
