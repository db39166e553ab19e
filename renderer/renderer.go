package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"sync"
	"time"

	"github.com/weiju/rosetta-raytracer/log"
	"github.com/weiju/rosetta-raytracer/scene"
	"github.com/weiju/rosetta-raytracer/tracer"
	"github.com/weiju/rosetta-raytracer/types"
)

var logger = log.New("renderer")

// A Renderer traces a scene into a private frame buffer using a fixed
// pool of scanline workers. Workers write to row-disjoint regions of
// the buffer, so pixel writes need no synchronization; the finished
// frame is handed over in a single step once every row completed.
type Renderer struct {
	sc    *scene.Scene
	opts  Options
	stats FrameStats
}

// Create a renderer for a validated scene. Option and scene
// configuration errors surface here, before any render work starts.
func New(sc *scene.Scene, opts Options) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameDims
	}
	if opts.NumWorkers <= 0 {
		return nil, ErrInvalidWorkerCount
	}
	if opts.NumSections <= 0 {
		return nil, ErrInvalidSectionCount
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{sc: sc, opts: opts}, nil
}

// Render the full frame. The sample offsets are drawn once and shared
// by every pixel; scanlines are distributed over the worker pool via a
// row channel. The first row error aborts the render and no partial
// frame is returned.
func (r *Renderer) Render() (*image.RGBA, error) {
	start := time.Now()

	r.sc.Camera.Setup(r.opts.FrameW, r.opts.FrameH)

	seed := r.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampler := tracer.NewSampler(rand.New(rand.NewSource(seed)))
	sampler.NumSections = r.opts.NumSections
	sampler.PixelW = r.opts.PixelW
	sampler.PixelH = r.opts.PixelH
	offsets := sampler.SampleOffsets()

	logger.Infof("rendering %dx%d frame, %d samples/pixel, %d workers",
		r.opts.FrameW, r.opts.FrameH, len(offsets), r.opts.NumWorkers)

	frame := image.NewRGBA(image.Rect(0, 0, int(r.opts.FrameW), int(r.opts.FrameH)))

	rows := make(chan uint32, r.opts.FrameH)
	for y := uint32(0); y < r.opts.FrameH; y++ {
		rows <- y
	}
	close(rows)

	r.stats = FrameStats{Workers: make([]WorkerStat, r.opts.NumWorkers)}
	errChan := make(chan error, r.opts.NumWorkers)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.NumWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			workerStart := time.Now()
			stat := &r.stats.Workers[id]
			stat.ID = id

			for y := range rows {
				if err := r.renderLine(y, frame, offsets); err != nil {
					errChan <- err
					return
				}
				stat.Rows++
			}
			stat.RenderTime = time.Since(workerStart)
		}(w)
	}
	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}

	for i := range r.stats.Workers {
		r.stats.Workers[i].FramePercent = 100.0 * float32(r.stats.Workers[i].Rows) / float32(r.opts.FrameH)
	}
	r.stats.RenderTime = time.Since(start)

	logger.Noticef("rendered frame in %s", r.stats.RenderTime)
	return frame, nil
}

// Get render statistics for the last completed frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Render one scanline: trace a primary ray per sample offset for each
// column, average the sampled colors and write exactly one pixel per
// column into the frame buffer.
func (r *Renderer) renderLine(y uint32, frame *image.RGBA, offsets []types.Vec2) error {
	if y >= r.opts.FrameH {
		return fmt.Errorf("renderer: scanline %d outside frame of height %d", y, r.opts.FrameH)
	}

	samples := make([]types.Color, len(offsets))
	for x := uint32(0); x < r.opts.FrameW; x++ {
		for i, offset := range offsets {
			ray := r.sc.Camera.MakeRay(float32(x)+offset.X(), float32(y)+offset.Y())
			samples[i] = tracer.TraceRay(r.sc, ray)
		}
		frame.SetRGBA(int(x), int(y), types.AverageColors(samples).RGBA())
	}
	return nil
}
