package scene

import (
	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/geometry"
	"github.com/daviskauffmann/raytracer/pkg/material"
)

// NewWhittedScene creates the classic four-sphere scene: two mirrors, a
// glass ball and a rubber ball under three point lights. The first (ivory)
// sphere is the one the animation driver moves.
func NewWhittedScene() *Scene {
	s := New()

	ivory := material.Ivory()
	glass := material.Glass()
	rubber := material.Rubber()
	mirror := material.Mirror()

	s.Spheres = []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory),
		geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2, glass),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, rubber),
		geometry.NewSphere(core.NewVec3(7, 5, -18), 4, mirror),
	}

	s.Lights = []Light{
		{Position: core.NewVec3(-20, 20, 20), Intensity: 1.5},
		{Position: core.NewVec3(30, 50, -25), Intensity: 1.8},
		{Position: core.NewVec3(30, 20, 30), Intensity: 1.7},
	}

	return s
}

// NewDiffuseScene creates the two-sphere diffuse scene for the path tracer:
// a small sphere resting on a very large one standing in for the ground.
// The materials only matter for validation; the path tracer scatters every
// surface the same way.
func NewDiffuseScene() *Scene {
	s := New()

	matte := material.New(material.Albedo{Diffuse: 1}, core.NewVec3(0.5, 0.5, 0.5), 1, 1)

	s.Spheres = []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, matte),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, matte),
	}

	return s
}
