package main

import (
	"github.com/revelaction/nerstat/corpus"
	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/tagset"

	"github.com/urfave/cli/v2"
)

func reconcileCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "reconcile",
		Usage: "compare the tagset definition against the types observed in the corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Usage: "directory containing one folder per document", Required: true},
			&cli.StringFlag{Name: "tagset", Usage: "tagset definition file", Required: true},
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
		},
		Action: func(c *cli.Context) error {
			tags, err := tagset.Load(c.String("tagset"))
			if err != nil {
				return err
			}

			res, err := corpus.Scan(c.String("root"), nil)
			if err != nil {
				return err
			}

			qc := tagset.Reconcile(tags, res.TypeCounts)

			r := render.NewRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")
			r.TagsetQC(len(tags), len(res.TypeCounts), qc)
			return nil
		},
	}
}
