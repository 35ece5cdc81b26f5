package renderer

import "time"

// WorkerStats tracks what one worker contributed to a frame
type WorkerStats struct {
	ID      int
	Rows    int
	Samples int64
	Busy    time.Duration
}

// RenderStats summarizes a completed frame
type RenderStats struct {
	Width        int
	Height       int
	TotalPixels  int
	TotalSamples int64
	RenderTime   time.Duration
	Workers      []WorkerStats
}
