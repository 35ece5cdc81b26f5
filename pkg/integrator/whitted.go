package integrator

import (
	"math"
	"math/rand"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/scene"
)

// DefaultWhittedDepth is the default recursion budget: a primary ray plus
// four secondary bounces.
const DefaultWhittedDepth = 5

// Whitted is the deterministic recursive integrator: Phong diffuse/specular
// shading with boolean shadow tests, plus recursive reflection and
// refraction rays weighted by the material's albedo. It is stateless; the
// random source is accepted only to satisfy the strategy interface.
type Whitted struct{}

// NewWhitted creates a new Whitted integrator
func NewWhitted() *Whitted {
	return &Whitted{}
}

// RayColor traces ray through the scene. Rays that miss everything, or that
// exhaust the recursion budget, resolve to the scene's background color.
func (w *Whitted) RayColor(ray core.Ray, s *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return s.Background
	}

	hit, ok := s.Intersect(ray, 0)
	if !ok {
		return s.Background
	}
	mat := hit.Material

	// Secondary rays, skipped entirely when their albedo weight is zero so
	// opaque materials terminate the recursion here.
	var reflectColor, refractColor core.Vec3
	if mat.Albedo.Reflect > 0 {
		reflectDir := ray.Direction.Reflect(hit.Normal).Normalize()
		reflectRay := core.NewRay(offsetOrigin(hit.Point, hit.Normal, reflectDir), reflectDir)
		reflectColor = w.RayColor(reflectRay, s, random, depth-1)
	}
	if mat.Albedo.Refract > 0 {
		refractDir := ray.Direction.Refract(hit.Normal, mat.RefractiveIndex, 1.0).Normalize()
		refractRay := core.NewRay(offsetOrigin(hit.Point, hit.Normal, refractDir), refractDir)
		refractColor = w.RayColor(refractRay, s, random, depth-1)
	}

	// Local shading: sum diffuse and specular intensity over every light
	// the hit point can see.
	var diffuseIntensity, specularIntensity float64
	for _, light := range s.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		lightDir := toLight.Normalize()

		shadowRay := core.NewRay(offsetOrigin(hit.Point, hit.Normal, lightDir), lightDir)
		if shadowHit, blocked := s.Intersect(shadowRay, 0); blocked && shadowHit.T < lightDistance {
			continue
		}

		diffuseIntensity += math.Max(0, lightDir.Dot(hit.Normal)) * light.Intensity
		specularIntensity += math.Pow(
			math.Max(0, lightDir.Reflect(hit.Normal).Dot(ray.Direction)),
			mat.SpecularExponent) * light.Intensity
	}

	white := core.NewVec3(1, 1, 1)
	return mat.Diffuse.Multiply(diffuseIntensity * mat.Albedo.Diffuse).
		Add(white.Multiply(specularIntensity * mat.Albedo.Specular)).
		Add(reflectColor.Multiply(mat.Albedo.Reflect)).
		Add(refractColor.Multiply(mat.Albedo.Refract))
}

// ResolvePixel averages the accumulated samples and soft-clips overbright
// pixels: when the largest channel exceeds 1 every channel is divided by it,
// preserving hue instead of clipping toward white.
func (w *Whitted) ResolvePixel(accum core.Vec3, samples int) core.Vec3 {
	c := accum.Multiply(1.0 / float64(samples))
	if m := c.MaxComponent(); m > 1 {
		c = c.Multiply(1 / m)
	}
	return c
}
