// Package corpus aggregates statistics over a directory of
// per-document annotation folders.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/nerstat/conll"
)

// Recognized file names inside a document folder.
const (
	AnnotatedFile = "admin.conll"
	InitialFile   = "INITIAL_CAS.conll"
)

// outsideLabel marks non-entity tokens in the BIO scheme.
const outsideLabel = "O"

// DocState classifies a document folder by file presence alone.
type DocState int

const (
	// StateAbsent: neither recognized file is present.
	StateAbsent DocState = iota

	// StateUnannotated: only the pre-annotation file is present.
	StateUnannotated

	// StateAnnotated: the admin file is present and is parsed for statistics.
	StateAnnotated
)

func (s DocState) String() string {
	switch s {
	case StateAnnotated:
		return "annotated"
	case StateUnannotated:
		return "unannotated"
	}
	return "absent"
}

// Document is one corpus unit: a named folder under the annotation root.
type Document struct {
	Name  string
	Path  string
	State DocState
}

// Stats is an immutable snapshot of corpus-wide counters and derived
// ratios. Ratios degrade to 0.0 when their denominator is zero.
type Stats struct {
	TotalDocumentFolders  int     `json:"total_document_folders"`
	AnnotatedDocuments    int     `json:"annotated_documents"`
	UnannotatedDocuments  int     `json:"unannotated_documents"`
	TotalSentences        int     `json:"total_sentences"`
	SentencesWithEntity   int     `json:"sentences_with_entity"`
	EntitySentenceRatio   float64 `json:"entity_sentence_ratio"`
	TotalTokens           int     `json:"total_tokens"`
	NumEntityLabelsBIO    int     `json:"num_entity_labels_bio"`
	NumEntityTypes        int     `json:"num_entity_types"`
	AverageSentenceLength float64 `json:"average_sentence_length"`
}

// Result is everything one scan produces: the summary snapshot, the
// two frequency tables and the raw sentence lengths for histogram
// consumers.
type Result struct {
	Stats           Stats
	LabelCounts     map[string]int
	TypeCounts      map[string]int
	SentenceLengths []int
}

// EntityType strips a literal B-/I- prefix from a BIO label.
func EntityType(label string) string {
	if strings.HasPrefix(label, "B-") || strings.HasPrefix(label, "I-") {
		return label[2:]
	}
	return label
}

// Documents lists the immediate subdirectories of root in
// lexicographic order, each classified once by file presence.
// A listing failure on root is the only fatal condition.
func Documents(root string) ([]Document, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list annotation root %s: %w", root, err)
	}

	var docs []Document
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		docs = append(docs, Document{
			Name:  entry.Name(),
			Path:  path,
			State: classify(path),
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

func classify(path string) DocState {
	if fileExists(filepath.Join(path, AnnotatedFile)) {
		return StateAnnotated
	}
	if fileExists(filepath.Join(path, InitialFile)) {
		return StateUnannotated
	}
	return StateAbsent
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Aggregator folds documents and sentences into corpus counters.
type Aggregator struct {
	totalDocs       int
	annotatedDocs   int
	unannotatedDocs int

	totalSentences  int
	entitySentences int
	totalTokens     int

	labelCounts map[string]int
	typeCounts  map[string]int
	lengths     []int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		labelCounts: map[string]int{},
		typeCounts:  map[string]int{},
	}
}

// AddDocument registers a document folder in the state buckets.
// Absent documents count toward the folder total only.
func (a *Aggregator) AddDocument(state DocState) {
	a.totalDocs++
	switch state {
	case StateAnnotated:
		a.annotatedDocs++
	case StateUnannotated:
		a.unannotatedDocs++
	}
}

// AddSentences folds parsed sentences of one annotated document into
// the counters. Labels equal to "O" contribute to no frequency table.
func (a *Aggregator) AddSentences(sentences []conll.Sentence) {
	a.totalSentences += len(sentences)

	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}

		a.lengths = append(a.lengths, len(sentence))
		hasEntity := false

		for _, token := range sentence {
			a.totalTokens++
			if token.Label == outsideLabel {
				continue
			}
			hasEntity = true
			a.labelCounts[token.Label]++
			a.typeCounts[EntityType(token.Label)]++
		}

		if hasEntity {
			a.entitySentences++
		}
	}
}

// Result returns the snapshot of everything aggregated so far.
func (a *Aggregator) Result() Result {
	ratio := 0.0
	if a.totalSentences > 0 {
		ratio = float64(a.entitySentences) / float64(a.totalSentences)
	}

	avgLen := 0.0
	if len(a.lengths) > 0 {
		sum := 0
		for _, l := range a.lengths {
			sum += l
		}
		avgLen = float64(sum) / float64(len(a.lengths))
	}

	return Result{
		Stats: Stats{
			TotalDocumentFolders:  a.totalDocs,
			AnnotatedDocuments:    a.annotatedDocs,
			UnannotatedDocuments:  a.unannotatedDocs,
			TotalSentences:        a.totalSentences,
			SentencesWithEntity:   a.entitySentences,
			EntitySentenceRatio:   ratio,
			TotalTokens:           a.totalTokens,
			NumEntityLabelsBIO:    len(a.labelCounts),
			NumEntityTypes:        len(a.typeCounts),
			AverageSentenceLength: avgLen,
		},
		LabelCounts:     a.labelCounts,
		TypeCounts:      a.typeCounts,
		SentenceLengths: a.lengths,
	}
}

// Scan computes corpus statistics over the annotation root. Only
// documents with an admin file are parsed; documents with only the
// initial file are counted as unannotated and skipped.
//
// progress, if not nil, is called once per document folder in
// processing order (mirrors the storage Preloader callback so the CLI
// can attach a progress bar).
func Scan(root string, progress func(current, total int, name string)) (Result, error) {
	docs, err := Documents(root)
	if err != nil {
		return Result{}, err
	}

	agg := NewAggregator()
	for i, doc := range docs {
		if progress != nil {
			progress(i+1, len(docs), doc.Name)
		}

		agg.AddDocument(doc.State)
		if doc.State != StateAnnotated {
			continue
		}

		sentences, err := conll.ParseFile(filepath.Join(doc.Path, AnnotatedFile))
		if err != nil {
			return Result{}, err
		}
		agg.AddSentences(sentences)
	}

	return agg.Result(), nil
}
