package scene

import (
	"math"
	"testing"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/geometry"
	"github.com/daviskauffmann/raytracer/pkg/material"
)

func TestScene_Intersect_Empty(t *testing.T) {
	s := New()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, ok := s.Intersect(ray, 0); ok {
		t.Errorf("Expected miss on empty scene, got hit at t=%v", hit.T)
	}
}

func TestScene_Intersect_Nearest(t *testing.T) {
	s := New()
	near := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.Rubber())
	far := geometry.NewSphere(core.NewVec3(0, 0, -20), 1, material.Mirror())
	// Far sphere listed first; the nearest hit must still win
	s.Spheres = []*geometry.Sphere{far, near}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.Intersect(ray, 0)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	const tolerance = 1e-9
	if math.Abs(hit.T-4.0) > tolerance {
		t.Errorf("Expected nearest hit at t=4, got %v", hit.T)
	}
	if hit.Material != near.Material {
		t.Error("Nearest hit did not come from the near sphere")
	}
}

func TestScene_Intersect_FarPlane(t *testing.T) {
	s := New()
	s.Spheres = []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, -2000), 1, material.Rubber()),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Beyond the default cutoff the sphere reads as background
	if hit, ok := s.Intersect(ray, 0); ok {
		t.Errorf("Expected miss beyond far plane, got hit at t=%v", hit.T)
	}

	// The cutoff is configuration, not a constant
	s.MaxDistance = 5000
	if _, ok := s.Intersect(ray, 0); !ok {
		t.Error("Expected hit after raising the far plane")
	}
}

func TestScene_Validate(t *testing.T) {
	valid := func() *Scene {
		s := New()
		s.Spheres = []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.Ivory()),
		}
		s.Lights = []Light{{Position: core.NewVec3(0, 10, 0), Intensity: 1}}
		return s
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Expected valid scene, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Scene)
	}{
		{
			name:   "zero radius",
			mutate: func(s *Scene) { s.Spheres[0].Radius = 0 },
		},
		{
			name:   "negative radius",
			mutate: func(s *Scene) { s.Spheres[0].Radius = -1 },
		},
		{
			name:   "missing material",
			mutate: func(s *Scene) { s.Spheres[0].Material = nil },
		},
		{
			name:   "invalid material",
			mutate: func(s *Scene) { s.Spheres[0].Material = &material.Material{RefractiveIndex: 0.5} },
		},
		{
			name:   "zero intensity light",
			mutate: func(s *Scene) { s.Lights[0].Intensity = 0 },
		},
		{
			name:   "non-positive far plane",
			mutate: func(s *Scene) { s.MaxDistance = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestScene_Animate(t *testing.T) {
	s := NewWhittedScene()
	before := make([]core.Vec3, len(s.Spheres))
	for i, sphere := range s.Spheres {
		before[i] = sphere.Center
	}

	s.Animate(math.Pi / 2)

	const tolerance = 1e-9
	if math.Abs(s.Spheres[0].Center.Y-1.0) > tolerance {
		t.Errorf("Expected first sphere at y=1, got %v", s.Spheres[0].Center.Y)
	}
	if s.Spheres[0].Center.X != before[0].X || s.Spheres[0].Center.Z != before[0].Z {
		t.Error("Animation touched more than the Y coordinate")
	}
	for i := 1; i < len(s.Spheres); i++ {
		if s.Spheres[i].Center != before[i] {
			t.Errorf("Animation moved sphere %d", i)
		}
	}
}

func TestScene_Animate_Empty(t *testing.T) {
	// Must not panic
	New().Animate(1.0)
}

func TestNewWhittedScene_Valid(t *testing.T) {
	s := NewWhittedScene()
	if err := s.Validate(); err != nil {
		t.Fatalf("Reference scene failed validation: %v", err)
	}
	if len(s.Spheres) != 4 {
		t.Errorf("Expected 4 spheres, got %d", len(s.Spheres))
	}
	if len(s.Lights) != 3 {
		t.Errorf("Expected 3 lights, got %d", len(s.Lights))
	}
}

func TestNewDiffuseScene_Valid(t *testing.T) {
	s := NewDiffuseScene()
	if err := s.Validate(); err != nil {
		t.Fatalf("Diffuse scene failed validation: %v", err)
	}
	if len(s.Spheres) != 2 {
		t.Errorf("Expected 2 spheres, got %d", len(s.Spheres))
	}
}
