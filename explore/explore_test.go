package explore

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/revelaction/nerstat/corpus"
	"github.com/revelaction/nerstat/render"
)

func newTestHandler(buf *bytes.Buffer) *Handler {
	r := render.NewRenderer(buf)
	r.HasColor = false

	return NewHandler(corpus.Result{
		Stats: corpus.Stats{TotalSentences: 2},
		LabelCounts: map[string]int{
			"B-PERSON": 3,
			"I-PERSON": 1,
			"B-ORG":    2,
		},
		TypeCounts:      map[string]int{"PERSON": 4, "ORG": 2},
		SentenceLengths: []int{2, 7},
	}, r)
}

func TestEvalStats(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	h.Eval("stats")

	if !strings.Contains(buf.String(), "Total sentences             : 2") {
		t.Errorf("missing summary output:\n%s", buf.String())
	}
}

func TestEvalLabel(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	h.Eval("label B-PERSON")

	if got := buf.String(); got != "B-PERSON: 3\n" {
		t.Errorf("output = %q", got)
	}
}

func TestEvalTypeListsVariants(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	h.Eval("type PERSON")

	out := buf.String()
	if !strings.Contains(out, "PERSON: 4") {
		t.Errorf("missing type count:\n%s", out)
	}
	if !strings.Contains(out, "B-PERSON: 3") || !strings.Contains(out, "I-PERSON: 1") {
		t.Errorf("missing BIO variants:\n%s", out)
	}
	if strings.Contains(out, "B-ORG") {
		t.Errorf("variant of other type leaked:\n%s", out)
	}
}

func TestEvalUnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	h.Eval("bogus")

	if !strings.Contains(buf.String(), "unknown command: bogus") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestVariantsSorted(t *testing.T) {
	h := newTestHandler(&bytes.Buffer{})

	got := h.Variants("PERSON")
	want := []string{"B-PERSON", "I-PERSON"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("variants = %v, want %v", got, want)
	}
}
