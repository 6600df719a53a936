package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/storage"
	"github.com/revelaction/nerstat/storage/sqlite/zombiezen"

	"github.com/urfave/cli/v2"
	"zombiezen.com/go/sqlite/sqlitex"
)

func runsCommand(ui UI) *cli.Command {
	dbFlag := &cli.StringFlag{Name: "db", Usage: "run-history sqlite database", Required: true}

	return &cli.Command{
		Name:  "runs",
		Usage: "inspect recorded corpus scans",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list recorded runs",
				Flags: []cli.Flag{dbFlag},
				Action: func(c *cli.Context) error {
					return runsListAction(c, ui)
				},
			},
			{
				Name:      "show",
				Usage:     "print the summary of one run",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					dbFlag,
					&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
				},
				Action: func(c *cli.Context) error {
					return runsShowAction(c, ui)
				},
			},
			{
				Name:      "diff",
				Usage:     "print counter deltas between two runs (candidate minus baseline)",
				ArgsUsage: "<baseline-id> <candidate-id>",
				Flags:     []cli.Flag{dbFlag},
				Action: func(c *cli.Context) error {
					return runsDiffAction(c, ui)
				},
			},
		},
	}
}

func openRunStore(c *cli.Context) (*zombiezen.RunStore, *sqlitex.Pool, error) {
	pool, err := zombiezen.NewPool(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	if err := zombiezen.CreateRunTables(pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return zombiezen.NewRunStore(pool), pool, nil
}

func runArg(c *cli.Context, i int) (int64, error) {
	arg := c.Args().Get(i)
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run id %q", arg)
	}
	return id, nil
}

func runsListAction(c *cli.Context, ui UI) error {
	store, pool, err := openRunStore(c)
	if err != nil {
		return err
	}
	defer pool.Close()

	runs, err := store.List()
	if err != nil {
		return err
	}

	for _, run := range runs {
		fmt.Fprintf(ui.Out, "📖 %d %s %s annotated=%d/%d sentences=%d\n",
			run.Id,
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.Root,
			run.Stats.AnnotatedDocuments,
			run.Stats.TotalDocumentFolders,
			run.Stats.TotalSentences)
	}

	return nil
}

func runsShowAction(c *cli.Context, ui UI) error {
	id, err := runArg(c, 0)
	if err != nil {
		return err
	}

	store, pool, err := openRunStore(c)
	if err != nil {
		return err
	}
	defer pool.Close()

	run, err := store.Read(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Run %d  %s  %s\n\n", run.Id, run.CreatedAt.Format("2006-01-02 15:04"), run.Root)

	r := render.NewRenderer(ui.Out)
	r.HasColor = !c.Bool("no-color")
	r.Summary(run.Stats)
	r.TopTypes(run.TypeCounts, 20)
	return nil
}

func runsDiffAction(c *cli.Context, ui UI) error {
	baselineId, err := runArg(c, 0)
	if err != nil {
		return err
	}
	candidateId, err := runArg(c, 1)
	if err != nil {
		return err
	}

	store, pool, err := openRunStore(c)
	if err != nil {
		return err
	}
	defer pool.Close()

	baseline, err := store.Read(baselineId)
	if err != nil {
		return err
	}
	candidate, err := store.Read(candidateId)
	if err != nil {
		return err
	}

	report := storage.Diff(baseline, candidate)

	fmt.Fprintf(ui.Out, "Diff run %d -> run %d\n", report.BaselineId, report.CandidateId)
	fmt.Fprintf(ui.Out, "Document folders       : %+d\n", report.DocumentFoldersDelta)
	fmt.Fprintf(ui.Out, "Annotated documents    : %+d\n", report.AnnotatedDelta)
	fmt.Fprintf(ui.Out, "Unannotated documents  : %+d\n", report.UnannotatedDelta)
	fmt.Fprintf(ui.Out, "Sentences              : %+d\n", report.SentencesDelta)
	fmt.Fprintf(ui.Out, "Sentences with entity  : %+d\n", report.EntitySentencesDelta)
	fmt.Fprintf(ui.Out, "Tokens                 : %+d\n", report.TokensDelta)
	fmt.Fprintf(ui.Out, "Entity sentence ratio  : %+.3f\n", report.RatioDelta)
	fmt.Fprintf(ui.Out, "Avg. sentence length   : %+.2f\n", report.AvgLenDelta)

	if len(report.TypeDeltas) > 0 {
		fmt.Fprintln(ui.Out, "Type deltas:")
		types := make([]string, 0, len(report.TypeDeltas))
		for typ := range report.TypeDeltas {
			types = append(types, typ)
		}
		sort.Strings(types)
		for _, typ := range types {
			fmt.Fprintf(ui.Out, "  %-16s %+d\n", typ, report.TypeDeltas[typ])
		}
	}

	return nil
}
