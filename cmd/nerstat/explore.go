package main

import (
	"github.com/revelaction/nerstat/explore"
	"github.com/revelaction/nerstat/render"

	"github.com/urfave/cli/v2"
)

func exploreCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "interactive prompt over observed labels and types",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Usage: "directory containing one folder per document", Required: true},
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
			&cli.BoolFlag{Name: "no-progress", Usage: "disable the progress bar"},
		},
		Action: func(c *cli.Context) error {
			res, err := scanCorpus(c.String("root"), c.Bool("no-progress"))
			if err != nil {
				return err
			}

			r := render.NewRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")

			return explore.NewHandler(res, r).Run()
		},
	}
}
