package integrator

import (
	"math"
	"math/rand"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/scene"
)

// DefaultPathDepth is the default bounce budget for the path tracer.
const DefaultPathDepth = 50

// scatterTMin rejects self-intersections of scatter rays, which originate
// exactly on the surface.
const scatterTMin = 1e-3

// Path is the stochastic diffuse integrator: every surface scatters into a
// random direction inside the unit sphere tangent to the hit point along
// the normal, attenuated by half per bounce. Rays that escape sample a
// vertical sky gradient.
type Path struct{}

// NewPath creates a new path tracing integrator
func NewPath() *Path {
	return &Path{}
}

// RayColor traces ray through the scene. An exhausted bounce budget
// contributes no light at all.
func (p *Path) RayColor(ray core.Ray, s *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := s.Intersect(ray, scatterTMin)
	if !ok {
		return p.sky(ray, s)
	}

	// Lambertian approximation: aim at a random point inside the unit
	// sphere centered one normal-length off the surface.
	scatterDir := hit.Normal.Add(core.RandomUnitVector(random))
	if scatterDir.LengthSquared() < 1e-12 {
		// The random vector nearly cancelled the normal
		scatterDir = hit.Normal
	}
	scattered := core.NewRay(hit.Point, scatterDir.Normalize())

	return p.RayColor(scattered, s, random, depth-1).Multiply(0.5)
}

// sky interpolates the miss gradient by the ray's vertical component.
func (p *Path) sky(ray core.Ray, s *scene.Scene) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return s.SkyBottom.Multiply(1.0 - t).Add(s.SkyTop.Multiply(t))
}

// ResolvePixel averages the accumulated samples, applies gamma-2 encoding
// and hard-clamps each channel to [0, 0.999] before quantization.
func (p *Path) ResolvePixel(accum core.Vec3, samples int) core.Vec3 {
	scale := 1.0 / float64(samples)
	c := core.NewVec3(
		math.Sqrt(accum.X*scale),
		math.Sqrt(accum.Y*scale),
		math.Sqrt(accum.Z*scale),
	)
	return c.Clamp(0, 0.999)
}
