package renderer

import (
	"math"

	"github.com/daviskauffmann/raytracer/pkg/core"
)

// CameraConfig holds the camera parameters
type CameraConfig struct {
	Origin core.Vec3
	VFov   float64 // vertical field of view, degrees
	Width  int
	Height int
}

// Camera generates primary rays for screen coordinates
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera looking down -Z
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	aspectRatio := float64(config.Width) / float64(config.Height)
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := config.Origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          config.Origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a unit-direction ray for screen coordinates (s, t) where
// 0 <= s,t <= 1, with t=1 at the top of the viewport.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}
