package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/revelaction/nerstat/corpus"
	"github.com/revelaction/nerstat/tagset"
)

func TestSortedCounts(t *testing.T) {
	counts := map[string]int{"PERSON": 3, "ORG": 7, "GPE": 3}

	rows := SortedCounts(counts)

	want := []CountRow{{"ORG", 7}, {"GPE", 3}, {"PERSON", 3}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
}

func TestCountCSV(t *testing.T) {
	var buf bytes.Buffer
	counts := map[string]int{"PERSON": 2, "LOC_CITY": 5}

	if err := CountCSV(&buf, "entity_type", counts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "entity_type,count\nLOC_CITY,5\nPERSON,2\n"
	if buf.String() != want {
		t.Fatalf("csv = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stats.json")
	stats := corpus.Stats{TotalSentences: 2, EntitySentenceRatio: 0.5}

	if err := WriteJSON(path, stats); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got corpus.Stats
	if err := json.Unmarshal(content, &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.TotalSentences != 2 || got.EntitySentenceRatio != 0.5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !strings.Contains(string(content), "\"total_sentences\": 2") {
		t.Errorf("expected snake_case keys, got %s", content)
	}
}

func TestWriteTagList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unused.txt")

	if err := WriteTagList(path, []string{"ORG", "PERSON"}); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "ORG\nPERSON\n" {
		t.Fatalf("content = %q", content)
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = false

	r.Summary(corpus.Stats{TotalDocumentFolders: 2, TotalSentences: 5, EntitySentenceRatio: 0.4})

	out := buf.String()
	if !strings.Contains(out, "Total document folders      : 2") {
		t.Errorf("missing folder line:\n%s", out)
	}
	if !strings.Contains(out, "Entity sentence ratio       : 0.400") {
		t.Errorf("missing ratio line:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color disabled but escape codes present:\n%q", out)
	}
}

func TestTopTypes(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = false

	r.TopTypes(map[string]int{"PERSON": 4, "ORG": 2, "GPE": 1}, 2)

	out := buf.String()
	if !strings.Contains(out, "Top 2 Entity Types") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "PERSON") || strings.Contains(out, "GPE") {
		t.Errorf("expected top-2 truncation:\n%s", out)
	}
}

func TestTopTypesEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.TopTypes(nil, 20)

	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty counter, got %q", buf.String())
	}
}

func TestLengthHistogram(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = false

	r.LengthHistogram([]int{1, 2, 3, 12})

	out := buf.String()
	if !strings.Contains(out, "0-  4") {
		t.Errorf("missing first bin:\n%s", out)
	}
	if !strings.Contains(out, "10- 14") {
		t.Errorf("missing bin for length 12:\n%s", out)
	}
}

func TestTagsetQC(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = false

	r.TagsetQC(3, 2, tagset.Result{UnusedInCorpus: []string{"ORG"}, UnknownInTagset: []string{"GPE"}})

	out := buf.String()
	if !strings.Contains(out, "Unused in corpus       : 1") {
		t.Errorf("missing unused count:\n%s", out)
	}
	if !strings.Contains(out, "unknown: GPE") {
		t.Errorf("missing unknown list:\n%s", out)
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.Render(corpus.Stats{TotalTokens: 3}); err != nil {
		t.Fatal(err)
	}

	var got corpus.Stats
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if got.TotalTokens != 3 {
		t.Errorf("total tokens = %d, want 3", got.TotalTokens)
	}
}
