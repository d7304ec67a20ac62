package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/yangruisxy/curvetrace/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "curvetrace"
	app.Usage = "build quantized curve acceleration structures"
	app.Version = "0.0.1"
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
			Name:  "bench",
			Usage: "encode a procedural hair scene and report leaf statistics",
			Description: `
Generate a procedural hair scene, build a BVH over its curve segments,
encode the leaves into quantized curve blocks and print size statistics
comparing the encoded footprint against raw control point storage.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "strands",
					Value: 1000,
					Usage: "number of hair strands to generate",
				},
				cli.IntFlag{
					Name:  "segments",
					Value: 8,
					Usage: "number of curve segments per strand",
				},
				cli.IntFlag{
					Name:  "leaf-size",
					Value: 8,
					Usage: "maximum number of primitives per BVH leaf",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for the procedural generator",
				},
			},
			Action: cmd.Bench,
		},
		{
			Name:   "layout",
			Usage:  "print leaf block field offsets for each primitive count",
			Action: cmd.ShowLayout,
		},
	}

	app.Run(os.Args)
}
