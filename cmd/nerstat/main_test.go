package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	annotated := filepath.Join(root, "doc-a")
	if err := os.MkdirAll(annotated, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "Ali B-PERSON\ngeldi O\n\nAnkara B-LOC_CITY\n"
	if err := os.WriteFile(filepath.Join(annotated, "admin.conll"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	initial := filepath.Join(root, "doc-b")
	if err := os.MkdirAll(initial, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(initial, "INITIAL_CAS.conll"), []byte("Ali O\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	return root
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	ui := UI{Out: &out, Err: &errBuf}

	err := newApp(ui).Run(append([]string{"nerstat"}, args...))
	return out.String(), errBuf.String(), err
}

func TestStatsCommand(t *testing.T) {
	root := writeCorpus(t)
	results := filepath.Join(t.TempDir(), "results")

	out, _, err := runApp(t, "stats",
		"--root", root,
		"--results", results,
		"--no-color", "--no-progress")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	for _, want := range []string{
		"Total document folders      : 2",
		"Annotated documents         : 1",
		"Total tokens                : 3",
		"Average sentence length     : 1.50 tokens",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}

	for _, name := range []string{"stats.json", "label_counts.csv", "type_counts.csv"} {
		if _, err := os.Stat(filepath.Join(results, name)); err != nil {
			t.Errorf("expected result file %s: %v", name, err)
		}
	}
}

func TestStatsCommandMissingTagsetIsNotFatal(t *testing.T) {
	root := writeCorpus(t)

	_, errOut, err := runApp(t, "stats",
		"--root", root,
		"--tagset", filepath.Join(t.TempDir(), "missing.csv"),
		"--no-color", "--no-progress")
	if err != nil {
		t.Fatalf("missing tagset must not be fatal, got: %v", err)
	}
	if !strings.Contains(errOut, "skipping tagset QC") {
		t.Errorf("expected warning on stderr, got %q", errOut)
	}
}

func TestReconcileCommand(t *testing.T) {
	root := writeCorpus(t)
	tagsetPath := filepath.Join(t.TempDir(), "tagset.csv")
	content := "Named Entity tags,Named Entity annotation\nPERSON,\nLOC_CITY,\nORG,\n"
	if err := os.WriteFile(tagsetPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runApp(t, "reconcile", "--root", root, "--tagset", tagsetPath, "--no-color")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	if !strings.Contains(out, "unused : ORG") {
		t.Errorf("expected ORG as unused:\n%s", out)
	}
	if !strings.Contains(out, "Unknown vs. tagset     : 0") {
		t.Errorf("expected no unknown types:\n%s", out)
	}
}

func TestTagsetCommandGroups(t *testing.T) {
	tagsetPath := filepath.Join(t.TempDir(), "tagset.csv")
	if err := os.WriteFile(tagsetPath, []byte("FAC_AIRPORT,\nLOC_CITY,\nPERSON,\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runApp(t, "tagset", "--file", tagsetPath, "--groups", "--no-color")
	if err != nil {
		t.Fatalf("tagset failed: %v", err)
	}

	if !strings.Contains(out, "BASE") || !strings.Contains(out, "FAC_AIRPORT") {
		t.Errorf("unexpected group output:\n%s", out)
	}
}

func TestRunsRecordAndDiff(t *testing.T) {
	root := writeCorpus(t)
	db := filepath.Join(t.TempDir(), "runs.db")

	for i := 0; i < 2; i++ {
		if _, _, err := runApp(t, "stats", "--root", root, "--db", db, "--no-color", "--no-progress"); err != nil {
			t.Fatalf("stats run %d failed: %v", i, err)
		}
	}

	out, _, err := runApp(t, "runs", "list", "--db", db)
	if err != nil {
		t.Fatalf("runs list failed: %v", err)
	}
	if !strings.Contains(out, "annotated=1/2") {
		t.Errorf("unexpected list output:\n%s", out)
	}

	out, _, err = runApp(t, "runs", "diff", "--db", db, "1", "2")
	if err != nil {
		t.Fatalf("runs diff failed: %v", err)
	}
	if !strings.Contains(out, "Sentences              : +0") {
		t.Errorf("expected zero sentence delta:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runApp(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "nerstat version") {
		t.Errorf("unexpected version output: %q", out)
	}
}
