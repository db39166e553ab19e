package tracer

import (
	"math/rand"

	"github.com/weiju/rosetta-raytracer/types"
)

// A StochasticSampler generates stratified, jittered sub-pixel sample
// offsets. The pixel area is divided into a NumSections x NumSections
// grid and one offset is drawn per grid cell.
type StochasticSampler struct {
	// Grid divisions per axis. Samples per pixel is the square.
	NumSections int

	// Extent of the pixel area to sample within.
	PixelW float32
	PixelH float32

	rand *rand.Rand
}

// Create a sampler with the default 3x3 grid covering one full pixel.
// The random generator is injected so that renders can be reproduced
// from a fixed seed.
func NewSampler(rnd *rand.Rand) *StochasticSampler {
	return &StochasticSampler{
		NumSections: 3,
		PixelW:      1.0,
		PixelH:      1.0,
		rand:        rnd,
	}
}

// Produce NumSections² offsets ordered row-major over the grid cells.
// Each offset sits at its cell center, displaced per axis by an
// independent random jitter of up to a quarter section with uniformly
// random sign. The offsets are drawn once per frame and reused for
// every pixel.
func (s *StochasticSampler) SampleOffsets() []types.Vec2 {
	sectionW := s.PixelW / float32(s.NumSections)
	sectionH := s.PixelH / float32(s.NumSections)

	offsets := make([]types.Vec2, 0, s.NumSections*s.NumSections)
	for j := 0; j < s.NumSections; j++ {
		for i := 0; i < s.NumSections; i++ {
			dx := (float32(i)+0.5)*sectionW + s.jitter(sectionW)
			dy := (float32(j)+0.5)*sectionH + s.jitter(sectionH)
			offsets = append(offsets, types.XY(dx, dy))
		}
	}
	return offsets
}

func (s *StochasticSampler) jitter(section float32) float32 {
	amount := s.rand.Float32() * section / 4.0
	if s.rand.Intn(2) == 0 {
		return -amount
	}
	return amount
}
