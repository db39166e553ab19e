package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/weiju/rosetta-raytracer/scene"
	"github.com/weiju/rosetta-raytracer/types"
)

func testScene(frameW, frameH uint32) *scene.Scene {
	sc := scene.NewScene(frameW, frameH)

	camera := scene.NewCamera(60.0)
	camera.LookAt = types.XYZ(0, 0, -4)
	sc.SetCamera(camera)

	mat := &scene.Material{
		Diffuse:       types.RGB(0.9, 0.1, 0.1),
		DiffuseCoeff:  0.8,
		SpecularCoeff: 0.5,
		Hardness:      32.0,
	}
	sc.AddObject(scene.NewSphere(types.XYZ(0, 0, -4), 1.5, mat))
	sc.AddObject(scene.NewSphere(types.XYZ(1.5, 0.5, -3), 0.5, mat))

	sc.AddLight(scene.Light{
		Position: types.XYZ(-3, 5, 1),
		Color:    types.RGB(1, 1, 1),
	})
	sc.Ambient = scene.Ambient{Color: types.RGB(1, 1, 1), Coeff: 0.1}
	sc.Background = types.RGB(0.2, 0.3, 0.5)
	return sc
}

func TestNewValidatesOptions(t *testing.T) {
	sc := testScene(32, 24)

	type spec struct {
		sc     *scene.Scene
		opts   Options
		expErr error
	}
	specs := []spec{
		{nil, DefaultOptions(32, 24), ErrSceneNotDefined},
		{sc, Options{FrameW: 0, FrameH: 24, NumWorkers: 4, NumSections: 3}, ErrInvalidFrameDims},
		{sc, Options{FrameW: 32, FrameH: 24, NumWorkers: 0, NumSections: 3}, ErrInvalidWorkerCount},
		{sc, Options{FrameW: 32, FrameH: 24, NumWorkers: 4, NumSections: 0}, ErrInvalidSectionCount},
	}

	for index, s := range specs {
		if _, err := New(s.sc, s.opts); err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

func TestNewRejectsSceneWithoutLights(t *testing.T) {
	sc := scene.NewScene(32, 24)
	sc.SetCamera(scene.NewCamera(60.0))

	_, err := New(sc, DefaultOptions(32, 24))
	if err == nil {
		t.Fatal("expected configuration error for scene without lights")
	}
	if !strings.Contains(err.Error(), "no lights") {
		t.Fatalf("expected descriptive light error; got %v", err)
	}
}

func TestRenderDeterministicAcrossWorkerCounts(t *testing.T) {
	render := func(numWorkers int) []byte {
		opts := DefaultOptions(64, 48)
		opts.NumWorkers = numWorkers
		opts.Seed = 42

		r, err := New(testScene(opts.FrameW, opts.FrameH), opts)
		if err != nil {
			t.Fatalf("unexpected renderer setup error: %v", err)
		}
		frame, err := r.Render()
		if err != nil {
			t.Fatalf("unexpected render error: %v", err)
		}
		return frame.Pix
	}

	sequential := render(1)
	parallel := render(4)
	if !bytes.Equal(sequential, parallel) {
		t.Fatal("expected pixel-identical output for 1-worker and 4-worker renders with the same seed")
	}
}

func TestRenderEmptySceneYieldsBackground(t *testing.T) {
	sc := scene.NewScene(16, 16)
	sc.SetCamera(scene.NewCamera(60.0))
	sc.AddLight(scene.Light{Position: types.XYZ(0, 5, 0), Color: types.RGB(1, 1, 1)})
	sc.Background = types.RGB(0.25, 0.5, 0.75)

	opts := DefaultOptions(16, 16)
	opts.Seed = 7
	r, err := New(sc, opts)
	if err != nil {
		t.Fatalf("unexpected renderer setup error: %v", err)
	}
	frame, err := r.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	expected := sc.Background.RGBA()
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := frame.RGBAAt(x, y); got != expected {
				t.Fatalf("pixel (%d, %d): expected background %v; got %v", x, y, expected, got)
			}
		}
	}
}

func TestRenderStats(t *testing.T) {
	opts := DefaultOptions(32, 24)
	opts.NumWorkers = 3
	opts.Seed = 1

	r, err := New(testScene(opts.FrameW, opts.FrameH), opts)
	if err != nil {
		t.Fatalf("unexpected renderer setup error: %v", err)
	}
	if _, err = r.Render(); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}

	stats := r.Stats()
	if stats.RenderTime <= 0 {
		t.Fatal("expected positive total render time")
	}
	if len(stats.Workers) != opts.NumWorkers {
		t.Fatalf("expected stats for %d workers; got %d", opts.NumWorkers, len(stats.Workers))
	}

	var totalRows uint32
	var totalPercent float32
	for _, stat := range stats.Workers {
		totalRows += stat.Rows
		totalPercent += stat.FramePercent
	}
	if totalRows != opts.FrameH {
		t.Fatalf("expected workers to cover %d rows; got %d", opts.FrameH, totalRows)
	}
	if totalPercent < 99.9 || totalPercent > 100.1 {
		t.Fatalf("expected frame percentages to sum to 100; got %f", totalPercent)
	}
}
