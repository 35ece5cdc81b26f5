package material

import (
	"fmt"

	"github.com/daviskauffmann/raytracer/pkg/core"
)

// Albedo holds the per-material blend weights controlling how much of a
// surface's final color comes from each contribution. The weights are not an
// energy budget: they may sum past 1 (the mirror preset's specular weight is
// 10) and the frame post-process renormalizes overbright pixels.
type Albedo struct {
	Diffuse  float64
	Specular float64
	Reflect  float64
	Refract  float64
}

// Material describes a surface's response to light. Materials are immutable
// once constructed and shared by pointer between any number of spheres; they
// live for the lifetime of the scene that references them.
type Material struct {
	Albedo           Albedo
	Diffuse          core.Vec3 // base diffuse color
	SpecularExponent float64   // Phong highlight exponent, > 0
	RefractiveIndex  float64   // >= 1, vacuum is 1
}

// New creates a material and applies defaults for omitted optical constants:
// a refractive index of 0 becomes 1 (vacuum) and a specular exponent of 0
// becomes 1 (broad highlight).
func New(albedo Albedo, diffuse core.Vec3, specularExponent, refractiveIndex float64) *Material {
	if specularExponent == 0 {
		specularExponent = 1
	}
	if refractiveIndex == 0 {
		refractiveIndex = 1
	}
	return &Material{
		Albedo:           albedo,
		Diffuse:          diffuse,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
	}
}

// Validate checks the constraints every material must satisfy. Violations
// are construction-time errors, never discovered mid-trace.
func (m *Material) Validate() error {
	if m.Albedo.Diffuse < 0 || m.Albedo.Specular < 0 || m.Albedo.Reflect < 0 || m.Albedo.Refract < 0 {
		return fmt.Errorf("material: albedo weights must be non-negative, got %+v", m.Albedo)
	}
	if m.Diffuse.X < 0 || m.Diffuse.Y < 0 || m.Diffuse.Z < 0 {
		return fmt.Errorf("material: diffuse color must be non-negative, got %v", m.Diffuse)
	}
	if m.SpecularExponent <= 0 {
		return fmt.Errorf("material: specular exponent must be positive, got %g", m.SpecularExponent)
	}
	if m.RefractiveIndex < 1 {
		return fmt.Errorf("material: refractive index must be >= 1, got %g", m.RefractiveIndex)
	}
	return nil
}

// Opaque reports whether the material spawns no secondary reflection or
// refraction rays.
func (m *Material) Opaque() bool {
	return m.Albedo.Reflect == 0 && m.Albedo.Refract == 0
}

// Reference materials from the classic four-sphere scene.

// Ivory is a dull off-white surface with a mild highlight.
func Ivory() *Material {
	return New(Albedo{Diffuse: 0.6, Specular: 0.3, Reflect: 0.1}, core.NewVec3(0.4, 0.4, 0.3), 50, 1)
}

// Glass is a mostly refractive surface with a tight highlight.
func Glass() *Material {
	return New(Albedo{Specular: 0.5, Reflect: 0.1, Refract: 0.8}, core.NewVec3(0.6, 0.7, 0.8), 125, 1.5)
}

// Rubber is a matte red surface with no secondary rays.
func Rubber() *Material {
	return New(Albedo{Diffuse: 0.9, Specular: 0.1}, core.NewVec3(0.3, 0.1, 0.1), 10, 1)
}

// Mirror is an almost perfect reflector with an overbright highlight.
func Mirror() *Material {
	return New(Albedo{Specular: 10, Reflect: 0.8}, core.NewVec3(1, 1, 1), 1425, 1)
}
