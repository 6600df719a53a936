// Package storage defines the run-history repository: every corpus
// scan can be persisted as a run so coverage can be compared between
// annotation rounds.
package storage

import (
	"time"

	"github.com/revelaction/nerstat/corpus"
)

// Run is one persisted corpus scan.
type Run struct {
	Id        int64
	CreatedAt time.Time
	Root      string

	Stats       corpus.Stats
	LabelCounts map[string]int
	TypeCounts  map[string]int
}

// RunReader defines read operations for run storage.
type RunReader interface {
	// List returns all runs in creation order. Frequency tables are
	// not loaded.
	List() ([]Run, error)

	// Read returns a single run by id, including frequency tables.
	Read(id int64) (Run, error)
}

// RunWriter defines write operations for run storage.
type RunWriter interface {
	// Write persists a run and returns its id.
	Write(run Run) (int64, error)
}

// RunRepository combines read and write operations.
type RunRepository interface {
	RunReader
	RunWriter
}

// DriftReport holds the counter deltas between two runs
// (candidate minus baseline).
type DriftReport struct {
	BaselineId  int64 `json:"baseline_id"`
	CandidateId int64 `json:"candidate_id"`

	DocumentFoldersDelta int `json:"document_folders_delta"`
	AnnotatedDelta       int `json:"annotated_delta"`
	UnannotatedDelta     int `json:"unannotated_delta"`
	SentencesDelta       int `json:"sentences_delta"`
	EntitySentencesDelta int `json:"entity_sentences_delta"`
	TokensDelta          int `json:"tokens_delta"`

	RatioDelta  float64 `json:"entity_sentence_ratio_delta"`
	AvgLenDelta float64 `json:"average_sentence_length_delta"`

	// TypeDeltas maps entity type to count delta; a type absent on one
	// side counts as zero there.
	TypeDeltas map[string]int `json:"type_deltas"`
}

// Diff compares two runs. Types missing on one side are treated as
// count zero.
func Diff(baseline, candidate Run) DriftReport {
	typeDeltas := map[string]int{}
	for typ, count := range baseline.TypeCounts {
		typeDeltas[typ] = -count
	}
	for typ, count := range candidate.TypeCounts {
		typeDeltas[typ] += count
	}
	for typ, delta := range typeDeltas {
		if delta == 0 {
			delete(typeDeltas, typ)
		}
	}

	b, c := baseline.Stats, candidate.Stats
	return DriftReport{
		BaselineId:  baseline.Id,
		CandidateId: candidate.Id,

		DocumentFoldersDelta: c.TotalDocumentFolders - b.TotalDocumentFolders,
		AnnotatedDelta:       c.AnnotatedDocuments - b.AnnotatedDocuments,
		UnannotatedDelta:     c.UnannotatedDocuments - b.UnannotatedDocuments,
		SentencesDelta:       c.TotalSentences - b.TotalSentences,
		EntitySentencesDelta: c.SentencesWithEntity - b.SentencesWithEntity,
		TokensDelta:          c.TotalTokens - b.TotalTokens,

		RatioDelta:  c.EntitySentenceRatio - b.EntitySentenceRatio,
		AvgLenDelta: c.AverageSentenceLength - b.AverageSentenceLength,

		TypeDeltas: typeDeltas,
	}
}
