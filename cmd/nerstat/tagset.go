package main

import (
	"fmt"

	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/tagset"

	"github.com/urfave/cli/v2"
)

func tagsetCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "tagset",
		Usage: "print the canonical tagset, flat or grouped by prefix",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "tagset definition file", Required: true},
			&cli.BoolFlag{Name: "groups", Usage: "group tags by prefix before the first underscore"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
		},
		Action: func(c *cli.Context) error {
			tags, err := tagset.Load(c.String("file"))
			if err != nil {
				return err
			}

			if !c.Bool("groups") {
				for _, tag := range tags {
					fmt.Fprintln(ui.Out, tag)
				}
				return nil
			}

			r := render.NewRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")
			r.Groups(tagset.GroupByPrefix(tags))
			return nil
		},
	}
}
