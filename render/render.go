// Package render prints corpus statistics to a terminal and exports
// them to JSON/CSV files.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revelaction/nerstat/corpus"
	"github.com/revelaction/nerstat/tagset"
)

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Green  = "\033[1;32m"
	Off    = "\033[0m"

	Green256  = "\033[1;38;5;70m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
)

const (
	barWidth     = 40
	barRune      = "█"
	histogramBin = 5
)

// Renderer writes human-readable statistic blocks to W.
type Renderer struct {
	W io.Writer

	HasColor bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, HasColor: true}
}

func (r *Renderer) color(code string) string {
	if !r.HasColor {
		return ""
	}
	return code
}

// Summary prints the corpus summary block.
func (r *Renderer) Summary(stats corpus.Stats) {
	fmt.Fprintf(r.W, "%s=== Corpus Summary ===%s\n", r.color(Teal), r.color(Off))
	fmt.Fprintf(r.W, "Total document folders      : %d\n", stats.TotalDocumentFolders)
	fmt.Fprintf(r.W, "Annotated documents         : %d\n", stats.AnnotatedDocuments)
	fmt.Fprintf(r.W, "Unannotated documents       : %d\n", stats.UnannotatedDocuments)
	fmt.Fprintf(r.W, "Total sentences             : %d\n", stats.TotalSentences)
	fmt.Fprintf(r.W, "Sentences with entity       : %d\n", stats.SentencesWithEntity)
	fmt.Fprintf(r.W, "Entity sentence ratio       : %.3f\n", stats.EntitySentenceRatio)
	fmt.Fprintf(r.W, "Total tokens                : %d\n", stats.TotalTokens)
	fmt.Fprintf(r.W, "# BIO labels                : %d\n", stats.NumEntityLabelsBIO)
	fmt.Fprintf(r.W, "# entity types              : %d\n", stats.NumEntityTypes)
	fmt.Fprintf(r.W, "Average sentence length     : %.2f tokens\n", stats.AverageSentenceLength)
}

// TopTypes prints a bar chart of the n most frequent entity types.
func (r *Renderer) TopTypes(counts map[string]int, n int) {
	rows := SortedCounts(counts)
	if len(rows) == 0 {
		return
	}
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}

	fmt.Fprintf(r.W, "\n%sTop %d Entity Types%s\n", r.color(Teal), len(rows), r.color(Off))
	r.bars(rows, Green256)
}

// Coverage prints the with/without-entity sentence bars.
func (r *Renderer) Coverage(stats corpus.Stats) {
	rows := []CountRow{
		{Name: "with entity", Count: stats.SentencesWithEntity},
		{Name: "without entity", Count: stats.TotalSentences - stats.SentencesWithEntity},
	}

	fmt.Fprintf(r.W, "\n%sSentence-Level Entity Coverage%s\n", r.color(Teal), r.color(Off))
	r.bars(rows, Yellow256)
}

// LengthHistogram prints the sentence length distribution in
// fixed-width bins.
func (r *Renderer) LengthHistogram(lengths []int) {
	if len(lengths) == 0 {
		return
	}

	bins := map[int]int{}
	maxBin := 0
	for _, l := range lengths {
		b := l / histogramBin
		bins[b]++
		if b > maxBin {
			maxBin = b
		}
	}

	var rows []CountRow
	for b := 0; b <= maxBin; b++ {
		lo := b * histogramBin
		hi := lo + histogramBin - 1
		rows = append(rows, CountRow{
			Name:  fmt.Sprintf("%3d-%3d", lo, hi),
			Count: bins[b],
		})
	}

	fmt.Fprintf(r.W, "\n%sSentence Length Distribution (tokens)%s\n", r.color(Teal), r.color(Off))
	r.bars(rows, Grey256)
}

// TagsetQC prints the reconciliation block.
func (r *Renderer) TagsetQC(tagsetSize, observedTypes int, res tagset.Result) {
	fmt.Fprintf(r.W, "\n%sTagset QC%s\n", r.color(Teal), r.color(Off))
	fmt.Fprintf(r.W, "Tagset size            : %d\n", tagsetSize)
	fmt.Fprintf(r.W, "Types seen in corpus   : %d\n", observedTypes)
	fmt.Fprintf(r.W, "Unused in corpus       : %d\n", len(res.UnusedInCorpus))
	fmt.Fprintf(r.W, "Unknown vs. tagset     : %d\n", len(res.UnknownInTagset))

	if len(res.UnusedInCorpus) > 0 {
		fmt.Fprintf(r.W, "  unused : %s\n", strings.Join(res.UnusedInCorpus, ", "))
	}
	if len(res.UnknownInTagset) > 0 {
		fmt.Fprintf(r.W, "  unknown: %s\n", strings.Join(res.UnknownInTagset, ", "))
	}
}

// Groups prints tag groups, sorted by group name.
func (r *Renderer) Groups(groups map[string][]string) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(r.W, "%s%-8s%s %s\n", r.color(Yellow), name, r.color(Off), strings.Join(groups[name], ", "))
	}
}

func (r *Renderer) bars(rows []CountRow, color string) {
	maxCount := 0
	nameWidth := 0
	for _, row := range rows {
		if row.Count > maxCount {
			maxCount = row.Count
		}
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}

	for _, row := range rows {
		width := 0
		if maxCount > 0 {
			width = row.Count * barWidth / maxCount
		}
		if row.Count > 0 && width == 0 {
			width = 1
		}
		fmt.Fprintf(r.W, "%-*s %s%s%s %d\n",
			nameWidth, row.Name,
			r.color(color), strings.Repeat(barRune, width), r.color(Off),
			row.Count)
	}
}
