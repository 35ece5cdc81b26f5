package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/daviskauffmann/raytracer/cmd"
	"github.com/daviskauffmann/raytracer/pkg/log"
)

var logger = log.New("raytracer")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render sphere scenes with Whitted ray tracing or diffuse path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a PNG file",
			Description: `
Render one frame of a scene. With no argument a built-in scene matching the
selected integrator is used; otherwise the argument names a JSON scene file.

The whitted integrator shades with Phong lighting, hard shadows, reflection
and refraction, one sample per pixel. The path integrator renders diffuse
surfaces under a sky gradient with many samples per pixel and gamma
correction. Sampling flags left unset take the integrator's defaults.`,
			ArgsUsage: "[scene.json]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "frame height",
				},
				cli.StringFlag{
					Name:  "integrator, i",
					Value: "whitted",
					Usage: "light transport: whitted or path",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default: per integrator)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "ray recursion depth (default: per integrator)",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees (default: per integrator)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed for sample jitter",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render workers (default: one per CPU)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "interactive",
			Usage:     "render an animated view of the scene in a window",
			ArgsUsage: "[scene.json]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view in degrees",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed for sample jitter",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render workers (default: one per CPU)",
				},
			},
			Action: cmd.RenderInteractive,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
