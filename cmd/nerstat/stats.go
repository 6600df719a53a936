package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/revelaction/nerstat/corpus"
	"github.com/revelaction/nerstat/render"
	"github.com/revelaction/nerstat/storage"
	"github.com/revelaction/nerstat/storage/sqlite/zombiezen"
	"github.com/revelaction/nerstat/tagset"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

// Result file names written under the results directory.
const (
	statsJSONFile   = "stats.json"
	labelCSVFile    = "label_counts.csv"
	typeCSVFile     = "type_counts.csv"
	unusedTagsFile  = "unused_tags_in_corpus.txt"
	unknownTagsFile = "unknown_types_in_tagset.txt"
)

func statsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "compute corpus statistics over an annotation root",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Usage: "directory containing one folder per document", Required: true},
			&cli.StringFlag{Name: "results", Usage: "directory to write stats.json and CSV counters to"},
			&cli.StringFlag{Name: "tagset", Usage: "tagset definition file for reconciliation"},
			&cli.StringFlag{Name: "db", Usage: "sqlite database to record this run in"},
			&cli.IntFlag{Name: "top", Value: 20, Usage: "number of entity types in the bar chart"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
			&cli.BoolFlag{Name: "no-progress", Usage: "disable the progress bar"},
		},
		Action: func(c *cli.Context) error {
			return statsAction(c, ui)
		},
	}
}

func statsAction(c *cli.Context, ui UI) error {
	root := c.String("root")

	res, err := scanCorpus(root, c.Bool("no-progress"))
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !c.Bool("no-color")

	r.Summary(res.Stats)
	r.TopTypes(res.TypeCounts, c.Int("top"))
	r.Coverage(res.Stats)
	r.LengthHistogram(res.SentenceLengths)

	resultsDir := c.String("results")
	if resultsDir != "" {
		if err := exportResults(resultsDir, res); err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "\nResults written to %s\n", resultsDir)
	}

	if path := c.String("tagset"); path != "" {
		if err := tagsetQC(ui, r, path, resultsDir, res); err != nil {
			return err
		}
	}

	if db := c.String("db"); db != "" {
		id, err := recordRun(db, root, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "\nRecorded run %d in %s\n", id, db)
	}

	return nil
}

// scanCorpus runs the aggregation, with an optional per-document
// progress bar. The bar is created lazily on the first callback, once
// the document total is known.
func scanCorpus(root string, noProgress bool) (corpus.Result, error) {
	if noProgress {
		return corpus.Scan(root, nil)
	}

	var bar *uiprogress.Bar
	current := ""

	res, err := corpus.Scan(root, func(_, total int, name string) {
		if bar == nil {
			uiprogress.Start()
			bar = uiprogress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
			bar.AppendFunc(func(b *uiprogress.Bar) string {
				return current
			})
		}
		current = name
		bar.Incr()
	})

	if bar != nil {
		uiprogress.Stop()
	}
	return res, err
}

func exportResults(dir string, res corpus.Result) error {
	if err := render.WriteJSON(filepath.Join(dir, statsJSONFile), res.Stats); err != nil {
		return err
	}
	if err := render.WriteCountCSV(filepath.Join(dir, labelCSVFile), "label", res.LabelCounts); err != nil {
		return err
	}
	return render.WriteCountCSV(filepath.Join(dir, typeCSVFile), "entity_type", res.TypeCounts)
}

// tagsetQC loads the tagset and renders the reconciliation block. A
// missing tagset file is not fatal: the check is skipped with a
// warning.
func tagsetQC(ui UI, r *render.Renderer, path, resultsDir string, res corpus.Result) error {
	tags, err := tagset.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(ui.Err, "nerstat: tagset file %s not found, skipping tagset QC\n", path)
			return nil
		}
		return err
	}

	qc := tagset.Reconcile(tags, res.TypeCounts)
	r.TagsetQC(len(tags), len(res.TypeCounts), qc)

	if resultsDir == "" {
		return nil
	}
	if err := render.WriteTagList(filepath.Join(resultsDir, unusedTagsFile), qc.UnusedInCorpus); err != nil {
		return err
	}
	return render.WriteTagList(filepath.Join(resultsDir, unknownTagsFile), qc.UnknownInTagset)
}

func recordRun(db, root string, res corpus.Result) (int64, error) {
	pool, err := zombiezen.NewPool(db)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	if err := zombiezen.CreateRunTables(pool); err != nil {
		return 0, err
	}

	store := zombiezen.NewRunStore(pool)
	return store.Write(storage.Run{
		CreatedAt:   time.Now().UTC(),
		Root:        root,
		Stats:       res.Stats,
		LabelCounts: res.LabelCounts,
		TypeCounts:  res.TypeCounts,
	})
}
