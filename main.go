package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/weiju/rosetta-raytracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rosetta-raytracer"
	app.Usage = "render scenes using stochastic supersampling ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-scenes",
			Usage:  "list builtin scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render single frame",
					Description: `Render a single frame of a builtin scene and save it as a PNG image.`,
					Flags: []cli.Flag{
						cli.IntFlag{
							Name:  "width",
							Value: 512,
							Usage: "frame width",
						},
						cli.IntFlag{
							Name:  "height",
							Value: 512,
							Usage: "frame height",
						},
						cli.IntFlag{
							Name:  "sections",
							Value: 3,
							Usage: "sampling grid divisions per axis; samples per pixel is the square",
						},
						cli.IntFlag{
							Name:  "workers",
							Value: 4,
							Usage: "number of scanline workers",
						},
						cli.Float64Flag{
							Name:  "jitter",
							Value: 1.0,
							Usage: "extent of the per-pixel jitter area",
						},
						cli.Int64Flag{
							Name:  "seed",
							Usage: "seed for the sampler jitter; 0 picks a time-based seed",
						},
						cli.StringFlag{
							Name:  "scene",
							Value: "default",
							Usage: "builtin scene to render",
						},
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					},
					Action: cmd.RenderFrame,
				},
			},
		},
	}

	app.Run(os.Args)
}
