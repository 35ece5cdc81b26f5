// Package integrator implements the light-transport strategies that turn a
// ray into a color: deterministic Whitted tracing and stochastic diffuse
// path tracing. Both share the scene's intersection query and differ only in
// what they do at a hit and in how accumulated samples become a display
// color.
package integrator

import (
	"math/rand"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/scene"
)

// surfaceEpsilon displaces secondary-ray origins off the surface they were
// spawned from, so a reflection, refraction or shadow ray cannot immediately
// re-intersect its own surface.
const surfaceEpsilon = 1e-3

// Integrator computes radiance along rays and resolves accumulated samples
// into a final pixel color.
type Integrator interface {
	// RayColor returns the color seen along ray. depth is the remaining
	// recursion budget; the integrator terminates when it reaches zero.
	RayColor(ray core.Ray, s *scene.Scene, random *rand.Rand, depth int) core.Vec3

	// ResolvePixel turns the sum of per-sample colors into the pixel's
	// final [0,1] color, applying the mode's tone-mapping policy.
	ResolvePixel(accum core.Vec3, samples int) core.Vec3
}

// offsetOrigin nudges point along the surface normal by surfaceEpsilon, on
// whichever side the direction dir continues to.
func offsetOrigin(point, normal, dir core.Vec3) core.Vec3 {
	if dir.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(surfaceEpsilon))
	}
	return point.Add(normal.Multiply(surfaceEpsilon))
}
