package storage

import (
	"reflect"
	"testing"

	"github.com/revelaction/nerstat/corpus"
)

func TestDiff(t *testing.T) {
	baseline := Run{
		Id: 1,
		Stats: corpus.Stats{
			TotalDocumentFolders:  10,
			AnnotatedDocuments:    4,
			UnannotatedDocuments:  6,
			TotalSentences:        100,
			SentencesWithEntity:   40,
			EntitySentenceRatio:   0.4,
			TotalTokens:           1000,
			AverageSentenceLength: 10.0,
		},
		TypeCounts: map[string]int{"PERSON": 20, "ORG": 5},
	}
	candidate := Run{
		Id: 2,
		Stats: corpus.Stats{
			TotalDocumentFolders:  10,
			AnnotatedDocuments:    7,
			UnannotatedDocuments:  3,
			TotalSentences:        150,
			SentencesWithEntity:   75,
			EntitySentenceRatio:   0.5,
			TotalTokens:           1600,
			AverageSentenceLength: 10.5,
		},
		TypeCounts: map[string]int{"PERSON": 35, "GPE": 2},
	}

	report := Diff(baseline, candidate)

	if report.BaselineId != 1 || report.CandidateId != 2 {
		t.Errorf("unexpected ids: %+v", report)
	}
	if report.AnnotatedDelta != 3 || report.UnannotatedDelta != -3 {
		t.Errorf("document deltas: %+v", report)
	}
	if report.SentencesDelta != 50 || report.TokensDelta != 600 {
		t.Errorf("volume deltas: %+v", report)
	}

	wantTypes := map[string]int{"PERSON": 15, "ORG": -5, "GPE": 2}
	if !reflect.DeepEqual(report.TypeDeltas, wantTypes) {
		t.Errorf("type deltas = %v, want %v", report.TypeDeltas, wantTypes)
	}
}

func TestDiffDropsUnchangedTypes(t *testing.T) {
	baseline := Run{TypeCounts: map[string]int{"PERSON": 5}}
	candidate := Run{TypeCounts: map[string]int{"PERSON": 5}}

	report := Diff(baseline, candidate)

	if len(report.TypeDeltas) != 0 {
		t.Fatalf("expected no type deltas, got %v", report.TypeDeltas)
	}
}
