package scene

import (
	"fmt"
	"math"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/geometry"
)

// DefaultMaxDistance is the far-plane cutoff beyond which the nearest hit is
// treated as background.
const DefaultMaxDistance = 1000.0

// Light is a point light source
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// Scene contains all the elements needed for rendering: an ordered list of
// spheres and an ordered list of point lights. Order only matters for
// tie-breaking exactly equal hit distances. The scene is read-only for the
// duration of a frame; Animate is the one sanctioned mutation between
// frames.
type Scene struct {
	Spheres []*geometry.Sphere
	Lights  []Light

	// Background is the constant color returned for rays that miss (or
	// exhaust their depth budget) under Whitted tracing.
	Background core.Vec3

	// SkyTop and SkyBottom define the vertical miss gradient used by the
	// path tracer.
	SkyTop    core.Vec3
	SkyBottom core.Vec3

	// MaxDistance is the far-plane cutoff for intersection queries.
	MaxDistance float64
}

// New creates an empty scene with the default background colors and far
// plane.
func New() *Scene {
	return &Scene{
		Background:  core.NewVec3(0.2, 0.7, 0.8),
		SkyTop:      core.NewVec3(0.5, 0.7, 1.0),
		SkyBottom:   core.NewVec3(1, 1, 1),
		MaxDistance: DefaultMaxDistance,
	}
}

// Intersect scans every sphere and returns the hit record for the globally
// nearest intersection at or beyond tMin, or false if the ray misses
// everything closer than the far plane.
func (s *Scene) Intersect(ray core.Ray, tMin float64) (*geometry.HitRecord, bool) {
	var closest *geometry.HitRecord
	closestSoFar := s.MaxDistance

	for _, sphere := range s.Spheres {
		if hit, ok := sphere.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// Validate checks every sphere and light against the construction-time
// constraints so malformed scenes are rejected before tracing starts.
func (s *Scene) Validate() error {
	if s.MaxDistance <= 0 {
		return fmt.Errorf("scene: max distance must be positive, got %g", s.MaxDistance)
	}
	for i, sphere := range s.Spheres {
		if sphere.Radius <= 0 {
			return fmt.Errorf("scene: sphere %d: radius must be positive, got %g", i, sphere.Radius)
		}
		if sphere.Material == nil {
			return fmt.Errorf("scene: sphere %d: missing material", i)
		}
		if err := sphere.Material.Validate(); err != nil {
			return fmt.Errorf("scene: sphere %d: %w", i, err)
		}
	}
	for i, light := range s.Lights {
		if light.Intensity <= 0 {
			return fmt.Errorf("scene: light %d: intensity must be positive, got %g", i, light.Intensity)
		}
	}
	return nil
}

// Animate applies the per-frame animation for the animated variant: the
// first sphere bobs along the Y axis with time t in seconds. The caller must
// ensure no trace pass is running while this mutates the scene.
func (s *Scene) Animate(t float64) {
	if len(s.Spheres) == 0 {
		return
	}
	s.Spheres[0].Center.Y = math.Sin(t)
}
