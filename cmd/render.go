// Package cmd implements the CLI commands.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/integrator"
	"github.com/daviskauffmann/raytracer/pkg/renderer"
	"github.com/daviskauffmann/raytracer/pkg/scene"
)

// modeDefaults holds the per-integrator defaults applied when the matching
// flag is not set explicitly.
type modeDefaults struct {
	spp   int
	depth int
	fov   float64
	scene func() *scene.Scene
}

func integratorFor(name string) (integrator.Integrator, modeDefaults, error) {
	switch name {
	case "whitted":
		return integrator.NewWhitted(), modeDefaults{
			spp:   1,
			depth: integrator.DefaultWhittedDepth,
			fov:   60,
			scene: scene.NewWhittedScene,
		}, nil
	case "path":
		return integrator.NewPath(), modeDefaults{
			spp:   100,
			depth: integrator.DefaultPathDepth,
			fov:   90,
			scene: scene.NewDiffuseScene,
		}, nil
	default:
		return nil, modeDefaults{}, fmt.Errorf("unknown integrator %q (want whitted or path)", name)
	}
}

// loadScene loads the scene file argument, or falls back to the mode's
// built-in scene when no argument is given.
func loadScene(ctx *cli.Context, defaults modeDefaults) (*scene.Scene, error) {
	switch ctx.NArg() {
	case 0:
		return defaults.scene(), nil
	case 1:
		return scene.LoadFile(ctx.Args().First())
	default:
		return nil, errors.New("expected at most one scene file argument")
	}
}

// RenderFrame renders a single frame to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	integ, defaults, err := integratorFor(ctx.String("integrator"))
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
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
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

	logger.Infof("rendering %dx%d frame, %d samples per pixel, depth %d",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth)

	img, stats, err := r.Render(s)
	if err != nil {
		return err
	}
	logger.Infof("rendered frame in %s", stats.RenderTime.Round(time.Millisecond))

	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	logger.Infof("wrote frame to %s", out)

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats *renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Samples", "Busy"})
	for _, w := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Rows),
			fmt.Sprintf("%d", w.Samples),
			w.Busy.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{"TOTAL", "",
		fmt.Sprintf("%d", stats.TotalSamples),
		stats.RenderTime.Round(time.Millisecond).String(),
	})
	table.Render()
	logger.Infof("frame statistics\n%s", buf.String())
}
