package renderer

import "time"

type WorkerStat struct {
	// Worker index in the pool.
	ID int

	// Number of scanlines processed by this worker and the percentage
	// of the total frame area they represent.
	Rows         uint32
	FramePercent float32

	// Time this worker spent tracing its assigned scanlines.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total wall-clock render time for the entire frame.
	RenderTime time.Duration
}
