// Package renderer drives the camera, sampler and integrator to produce
// images: it owns pixel iteration, per-pixel sample accumulation and the
// final quantization to 8-bit RGBA.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/daviskauffmann/raytracer/pkg/core"
	"github.com/daviskauffmann/raytracer/pkg/integrator"
	"github.com/daviskauffmann/raytracer/pkg/scene"
)

// Config holds the rendering parameters
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	NumWorkers      int // 0 means one worker per CPU
}

// Validate checks the configuration for usable values
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("renderer: invalid dimensions %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("renderer: samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("renderer: max depth must be positive, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("renderer: negative worker count %d", c.NumWorkers)
	}
	return nil
}

// Renderer renders scenes through a fixed camera and integrator
type Renderer struct {
	config     Config
	camera     *Camera
	integrator integrator.Integrator
}

// NewRenderer creates a renderer for the given configuration
func NewRenderer(config Config, camera *Camera, integ integrator.Integrator) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		config:     config,
		camera:     camera,
		integrator: integ,
	}, nil
}

// Render produces one frame of the scene. The output is deterministic for a
// given seed regardless of the worker count: every row derives its own
// random stream from the seed and the row index.
func (r *Renderer) Render(s *scene.Scene) (*image.RGBA, *RenderStats, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))

	pool := newWorkerPool(r, s, img)
	workers := pool.renderAll()

	stats := &RenderStats{
		Width:       r.config.Width,
		Height:      r.config.Height,
		TotalPixels: r.config.Width * r.config.Height,
		RenderTime:  time.Since(start),
		Workers:     workers,
	}
	for _, w := range workers {
		stats.TotalSamples += w.Samples
	}
	return img, stats, nil
}

// renderRow shades one row of pixels into the image. Rows never overlap, so
// workers write to the image without coordination.
func (r *Renderer) renderRow(s *scene.Scene, img *image.RGBA, row int, random *rand.Rand) int64 {
	width := float64(r.config.Width)
	height := float64(r.config.Height)
	samples := r.config.SamplesPerPixel

	var total int64
	for i := 0; i < r.config.Width; i++ {
		var accum core.Vec3
		for sample := 0; sample < samples; sample++ {
			// Single-sample renders shoot through pixel centers so the
			// frame is reproducible without any stochastic jitter.
			du, dv := 0.5, 0.5
			if samples > 1 {
				du, dv = random.Float64(), random.Float64()
			}
			u := (float64(i) + du) / width
			v := (height - (float64(row) + dv)) / height

			c := r.integrator.RayColor(r.camera.GetRay(u, v), s, random, r.config.MaxDepth)
			if !c.IsFinite() {
				c = core.Vec3{}
			}
			accum = accum.Add(c)
		}
		total += int64(samples)

		resolved := r.integrator.ResolvePixel(accum, samples).Clamp(0, 1)
		img.SetRGBA(i, row, color.RGBA{
			R: uint8(255 * resolved.X),
			G: uint8(255 * resolved.Y),
			B: uint8(255 * resolved.Z),
			A: 255,
		})
	}
	return total
}
