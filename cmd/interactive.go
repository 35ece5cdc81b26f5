package cmd

import (
	"image"

	"github.com/urfave/cli"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/display"
	"github.com/daviskauffmann/raytracer/pkg/renderer"
)

// RenderInteractive opens a window and renders the animated scene in a
// loop, one frame per display refresh. Only the deterministic integrator is
// fast enough for this, so the integrator flag is not offered here.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	integ, defaults, err := integratorFor("whitted")
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: defaults.spp,
		MaxDepth:        defaults.depth,
		Seed:            ctx.Int64("seed"),
		NumWorkers:      ctx.Int("workers"),
	}
	fov := defaults.fov
	if ctx.IsSet("fov") {
		fov = ctx.Float64("fov")
	}

	s, err := loadScene(ctx, defaults)
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		VFov:   fov,
		Width:  config.Width,
		Height: config.Height,
	})
	r, err := renderer.NewRenderer(config, camera, integ)
	if err != nil {
		return err
	}

	window, err := display.NewWindow(config.Width, config.Height, "raytracer")
	if err != nil {
		return err
	}
	defer window.Close()

	logger.Infof("rendering %dx%d interactive view, escape closes the window", config.Width, config.Height)

	var renderErr error
	err = window.Run(func(elapsed float64) *image.RGBA {
		s.Animate(elapsed)
		img, _, err := r.Render(s)
		if err != nil {
			renderErr = err
			return nil
		}
		return img
	})
	if err != nil {
		return err
	}
	return renderErr
}
