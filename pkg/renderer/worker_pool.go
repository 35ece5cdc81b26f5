package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/daviskauffmann/raytracer/pkg/scene"
)

// workerPool distributes image rows across workers. Determinism comes from
// the rows, not the workers: each row seeds its own random stream from the
// frame seed plus the row index, so any scheduling of rows onto workers
// produces the same pixels.
type workerPool struct {
	renderer *Renderer
	scene    *scene.Scene
	img      *image.RGBA
	rows     chan int
}

func newWorkerPool(r *Renderer, s *scene.Scene, img *image.RGBA) *workerPool {
	return &workerPool{
		renderer: r,
		scene:    s,
		img:      img,
		rows:     make(chan int, r.config.Height),
	}
}

// renderAll renders every row of the frame and returns per-worker stats.
func (wp *workerPool) renderAll() []WorkerStats {
	numWorkers := wp.renderer.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	for row := 0; row < wp.renderer.config.Height; row++ {
		wp.rows <- row
	}
	close(wp.rows)

	stats := make([]WorkerStats, numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stats[id] = wp.run(id)
		}(i)
	}
	wg.Wait()

	return stats
}

// run is the worker loop: pull a row, derive its random stream, shade it.
func (wp *workerPool) run(id int) WorkerStats {
	stats := WorkerStats{ID: id}
	seed := wp.renderer.config.Seed

	for row := range wp.rows {
		start := time.Now()
		random := rand.New(rand.NewSource(seed + int64(row)))
		stats.Samples += wp.renderer.renderRow(wp.scene, wp.img, row, random)
		stats.Rows++
		stats.Busy += time.Since(start)
	}
	return stats
}
