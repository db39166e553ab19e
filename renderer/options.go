package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Size of the scanline worker pool. Never auto-detected; callers
	// size the pool explicitly.
	NumWorkers int

	// Sampler grid divisions per axis; samples per pixel is the square.
	NumSections int

	// Extent of the per-pixel jitter area in pixel units.
	PixelW float32
	PixelH float32

	// Seed for the sampler's jitter draw. Zero selects a time-based
	// seed; any other value makes the render reproducible.
	Seed int64
}

// Default render settings for the given frame dimensions: 3x3 sampling
// grid over a full pixel, 4 workers.
func DefaultOptions(frameW, frameH uint32) Options {
	return Options{
		FrameW:      frameW,
		FrameH:      frameH,
		NumWorkers:  4,
		NumSections: 3,
		PixelW:      1.0,
		PixelH:      1.0,
	}
}
