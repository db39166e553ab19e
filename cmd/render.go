package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/weiju/rosetta-raytracer/renderer"
	"github.com/weiju/rosetta-raytracer/scene"
)

// Render a still frame of a builtin scene and write it out as PNG.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.DefaultOptions(
		uint32(ctx.Int("width")),
		uint32(ctx.Int("height")),
	)
	opts.NumWorkers = ctx.Int("workers")
	opts.NumSections = ctx.Int("sections")
	opts.Seed = ctx.Int64("seed")
	if jitter := float32(ctx.Float64("jitter")); jitter > 0 {
		opts.PixelW = jitter
		opts.PixelH = jitter
	}

	sc, err := scene.Builtin(ctx.String("scene"), opts.FrameW, opts.FrameH)
	if err != nil {
		return err
	}

	r, err := renderer.New(sc, opts)
	if err != nil {
		return err
	}

	frame, err := r.Render()
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = png.Encode(f, frame); err != nil {
		return fmt.Errorf("cmd: error encoding png file: %v", err)
	}
	logger.Noticef("wrote frame to %s", imgFile)

	displayFrameStats(r.Stats())
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
