package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	verboseKey = "verbose"
	limitKey   = "limit"
	widthKey   = "width"
	depthKey   = "depth"
	outKey     = "out"
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  verboseKey,
			Usage: "Log store activity to stderr",
		},
		&cli.IntFlag{
			Name:  limitKey,
			Usage: "Maximum store slots, 0 for unbounded",
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "depgraph",
		Usage: "Explore dependency node sets",
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Build a small spreadsheet, change a cell and print the events",
				Flags:  commonFlags(),
				Action: demo,
			},
			{
				Name:  "dot",
				Usage: "Write the demo spreadsheet as a graphviz digraph",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  outKey,
						Usage: "Output file, stdout when empty",
					},
				),
				Action: dot,
			},
			{
				Name:  "stats",
				Usage: "Build width * depth chains, remove every other one and report store usage",
				Flags: append(commonFlags(),
					&cli.UintFlag{
						Name:  widthKey,
						Usage: "Number of chains",
						Value: 100,
					},
					&cli.UintFlag{
						Name:  depthKey,
						Usage: "Nodes per chain",
						Value: 10,
					},
				),
				Action: stats,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
