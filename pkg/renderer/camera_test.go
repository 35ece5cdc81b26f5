package renderer

import (
	"math"
	"testing"

	"github.com/daviskauffmann/raytracer/pkg/core"
)

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		VFov:   90,
		Width:  100,
		Height: 100,
	})

	ray := camera.GetRay(0.5, 0.5)

	const tolerance = 1e-9
	want := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(want).Length() > tolerance {
		t.Errorf("Expected center ray %v, got %v", want, ray.Direction)
	}
	if ray.Origin != (core.Vec3{}) {
		t.Errorf("Expected ray from origin, got %v", ray.Origin)
	}
}

func TestCamera_ScreenOrientation(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		VFov:   60,
		Width:  200,
		Height: 100,
	})

	if top := camera.GetRay(0.5, 1.0); top.Direction.Y <= 0 {
		t.Errorf("Expected t=1 to look up, got %v", top.Direction)
	}
	if bottom := camera.GetRay(0.5, 0.0); bottom.Direction.Y >= 0 {
		t.Errorf("Expected t=0 to look down, got %v", bottom.Direction)
	}
	if right := camera.GetRay(1.0, 0.5); right.Direction.X <= 0 {
		t.Errorf("Expected s=1 to look right, got %v", right.Direction)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	// A 90 degree square camera spans one focal length to each viewport
	// edge: the right-edge ray leaves at exactly 45 degrees.
	camera := NewCamera(CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		VFov:   90,
		Width:  100,
		Height: 100,
	})

	ray := camera.GetRay(1.0, 0.5)

	const tolerance = 1e-9
	want := 1 / math.Sqrt2
	if math.Abs(ray.Direction.X-want) > tolerance || math.Abs(ray.Direction.Z+want) > tolerance {
		t.Errorf("Expected 45 degree edge ray, got %v", ray.Direction)
	}
}

func TestCamera_UnitDirections(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Origin: core.NewVec3(0, 1, 3),
		VFov:   60,
		Width:  640,
		Height: 400,
	})

	const tolerance = 1e-9
	for _, st := range [][2]float64{{0, 0}, {1, 0}, {0.25, 0.75}, {1, 1}} {
		ray := camera.GetRay(st[0], st[1])
		if math.Abs(ray.Direction.Length()-1) > tolerance {
			t.Errorf("GetRay(%v, %v) direction not unit length: %v", st[0], st[1], ray.Direction.Length())
		}
	}
}

func TestCamera_OffsetOrigin(t *testing.T) {
	origin := core.NewVec3(1, 2, 3)
	camera := NewCamera(CameraConfig{
		Origin: origin,
		VFov:   90,
		Width:  100,
		Height: 100,
	})

	ray := camera.GetRay(0.5, 0.5)

	const tolerance = 1e-9
	if ray.Origin != origin {
		t.Errorf("Expected ray origin %v, got %v", origin, ray.Origin)
	}
	want := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(want).Length() > tolerance {
		t.Errorf("Moving the camera changed the center direction: %v", ray.Direction)
	}
}
