package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/geometry"
	"github.com/daviskauffmann/raytracer/pkg/material"
)

// Config is the on-disk scene description. Materials are declared once by
// name and referenced from spheres, so a material shared by several spheres
// is a single shared instance at runtime.
type Config struct {
	Materials map[string]MaterialConfig `json:"materials"`
	Spheres   []SphereConfig            `json:"spheres"`
	Lights    []LightConfig             `json:"lights"`

	Background  *[3]float64 `json:"background,omitempty"`
	SkyTop      *[3]float64 `json:"skyTop,omitempty"`
	SkyBottom   *[3]float64 `json:"skyBottom,omitempty"`
	MaxDistance float64     `json:"maxDistance,omitempty"`
}

// MaterialConfig mirrors material.Material. Albedo is the weight quadruple
// [diffuse, specular, reflect, refract].
type MaterialConfig struct {
	Albedo           [4]float64 `json:"albedo"`
	Diffuse          [3]float64 `json:"diffuse"`
	SpecularExponent float64    `json:"specularExponent,omitempty"`
	RefractiveIndex  float64    `json:"refractiveIndex,omitempty"`
}

// SphereConfig places a sphere and names its material.
type SphereConfig struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// LightConfig places a point light.
type LightConfig struct {
	Position  [3]float64 `json:"position"`
	Intensity float64    `json:"intensity"`
}

// ErrUnknownMaterial is returned when a sphere references a material name
// the description never declares.
var ErrUnknownMaterial = errors.New("unknown material")

func vec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

// FromConfig builds and validates a runtime scene from a description.
func FromConfig(cfg *Config) (*Scene, error) {
	s := New()

	materials := make(map[string]*material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		materials[name] = material.New(
			material.Albedo{
				Diffuse:  mc.Albedo[0],
				Specular: mc.Albedo[1],
				Reflect:  mc.Albedo[2],
				Refract:  mc.Albedo[3],
			},
			vec3(mc.Diffuse),
			mc.SpecularExponent,
			mc.RefractiveIndex,
		)
	}

	for i, sc := range cfg.Spheres {
		mat, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("scene: sphere %d: %w %q", i, ErrUnknownMaterial, sc.Material)
		}
		s.Spheres = append(s.Spheres, geometry.NewSphere(vec3(sc.Center), sc.Radius, mat))
	}

	for _, lc := range cfg.Lights {
		s.Lights = append(s.Lights, Light{Position: vec3(lc.Position), Intensity: lc.Intensity})
	}

	if cfg.Background != nil {
		s.Background = vec3(*cfg.Background)
	}
	if cfg.SkyTop != nil {
		s.SkyTop = vec3(*cfg.SkyTop)
	}
	if cfg.SkyBottom != nil {
		s.SkyBottom = vec3(*cfg.SkyBottom)
	}
	if cfg.MaxDistance != 0 {
		s.MaxDistance = cfg.MaxDistance
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// LoadFile reads a JSON scene description from disk.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scene: parsing %s: %w", path, err)
	}

	return FromConfig(&cfg)
}
