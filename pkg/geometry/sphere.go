package geometry

import (
	"math"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/material"
)

// HitRecord contains information about a ray-surface intersection. Records
// are transient: produced per intersection query, never persisted.
type HitRecord struct {
	T        float64            // distance along the ray
	Point    core.Vec3          // point of intersection
	Normal   core.Vec3          // unit normal pointing out of the surface
	Material *material.Material // material of the hit object
}

// Sphere is the scene's only primitive. The center is the one piece of scene
// state an animation driver may mutate between frames; everything else is
// fixed after construction.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect solves the ray-sphere intersection geometrically: project the
// center onto the ray to get the closest-approach distance, then step back
// and forward by the half-chord. It returns the nearest root at or beyond
// tMin; when the near root is behind tMin the ray origin is inside the
// sphere and the far root is returned instead. The ray direction must be
// unit length.
func (s *Sphere) Intersect(ray core.Ray, tMin float64) (float64, bool) {
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius

	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)

	t := tca - thc
	if t < tMin {
		// Origin is inside the sphere (or the near root is disallowed)
		t = tca + thc
	}
	if t < tMin {
		return 0, false
	}

	return t, true
}

// Hit tests the sphere against a ray and fills in a hit record for the
// nearest intersection in [tMin, tMax).
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	t, ok := s.Intersect(ray, tMin)
	if !ok || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	return &HitRecord{
		T:        t,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
	}, true
}
