// Package explore provides an interactive prompt over the label and
// type frequency tables of a scanned corpus.
package explore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/revelaction/nerstat/corpus"
	"github.com/revelaction/nerstat/render"

	"github.com/c-bata/go-prompt"
)

const defaultTop = 20

var commands = []prompt.Suggest{
	{Text: "stats", Description: "corpus summary"},
	{Text: "top", Description: "top N entity types"},
	{Text: "label", Description: "count for one BIO label"},
	{Text: "type", Description: "count and BIO variants for one entity type"},
	{Text: "hist", Description: "sentence length histogram"},
	{Text: "quit", Description: "leave the prompt"},
}

type Handler struct {
	Result   corpus.Result
	Renderer *render.Renderer
}

func NewHandler(res corpus.Result, r *render.Renderer) *Handler {
	return &Handler{
		Result:   res,
		Renderer: r,
	}
}

func (h *Handler) Run() error {
	fmt.Println("🔎 stats | top [n] | label <L> | type <T> | hist | quit")

	history := []string{}

	for {
		in := prompt.Input("  🔖 ", h.completer,
			prompt.OptionTitle("nerstat explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "quit" || in == "exit" {
			return nil
		}
		if in == "" {
			continue
		}

		history = append(history, in)
		h.Eval(in)
	}
}

// Eval executes one prompt line.
func (h *Handler) Eval(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "stats":
		h.Renderer.Summary(h.Result.Stats)

	case "top":
		n := defaultTop
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil && v > 0 {
				n = v
			}
		}
		h.Renderer.TopTypes(h.Result.TypeCounts, n)

	case "label":
		if len(fields) < 2 {
			fmt.Fprintln(h.Renderer.W, "usage: label <BIO-label>")
			return
		}
		label := fields[1]
		fmt.Fprintf(h.Renderer.W, "%s: %d\n", label, h.Result.LabelCounts[label])

	case "type":
		if len(fields) < 2 {
			fmt.Fprintln(h.Renderer.W, "usage: type <entity-type>")
			return
		}
		typ := fields[1]
		fmt.Fprintf(h.Renderer.W, "%s: %d\n", typ, h.Result.TypeCounts[typ])
		for _, label := range h.Variants(typ) {
			fmt.Fprintf(h.Renderer.W, "  %s: %d\n", label, h.Result.LabelCounts[label])
		}

	case "hist":
		h.Renderer.LengthHistogram(h.Result.SentenceLengths)

	default:
		fmt.Fprintf(h.Renderer.W, "unknown command: %s\n", fields[0])
	}
}

// Variants returns the observed BIO labels that collapse to the given
// entity type, sorted.
func (h *Handler) Variants(typ string) []string {
	var labels []string
	for label := range h.Result.LabelCounts {
		if corpus.EntityType(label) == typ {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	befCursor := in.TextBeforeCursor()
	if befCursor == "" {
		return nil
	}

	tokens := strings.Split(befCursor, " ")
	if len(tokens) == 1 {
		return prompt.FilterHasPrefix(commands, tokens[0], true)
	}

	// Second token: complete names for the label/type commands.
	switch tokens[0] {
	case "label":
		return prompt.FilterHasPrefix(h.nameSuggests(h.Result.LabelCounts), in.GetWordBeforeCursor(), true)
	case "type":
		return prompt.FilterHasPrefix(h.nameSuggests(h.Result.TypeCounts), in.GetWordBeforeCursor(), true)
	}

	return nil
}

func (h *Handler) nameSuggests(counts map[string]int) []prompt.Suggest {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	suggests := make([]prompt.Suggest, 0, len(names))
	for _, name := range names {
		suggests = append(suggests, prompt.Suggest{
			Text:        name,
			Description: strconv.Itoa(counts[name]),
		})
	}
	return suggests
}
