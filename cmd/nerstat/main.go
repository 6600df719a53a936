package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Build information, set via -ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "nerstat: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "nerstat",
		Usage:     "corpus statistics and tagset reconciliation for BIO-annotated NER corpora",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Commands: []*cli.Command{
			statsCommand(ui),
			reconcileCommand(ui),
			tagsetCommand(ui),
			runsCommand(ui),
			exploreCommand(ui),
			versionCommand(ui),
		},
	}
}

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print build information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "nerstat version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
