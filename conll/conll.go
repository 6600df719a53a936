// Package conll reads INCEpTION-style CoNLL annotation files.
//
// Expected format per line:
//
//	TOKEN  ...  NER_TAG
//
// where TOKEN is the surface form and NER_TAG is a BIO-style tag
// (e.g. B-PERSON, I-PERSON, O). Sentences are separated by blank lines.
package conll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Token is one annotated word: the surface form and its BIO label.
type Token struct {
	Text  string
	Label string
}

// Sentence is an ordered run of tokens between two blank lines.
type Sentence []Token

// ParseFile reads an annotation file and returns its sentences.
// Only I/O failures are reported; content irregularities are absorbed
// by ParseReader.
func ParseFile(path string) ([]Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotation file %s: %w", path, err)
	}
	defer f.Close()

	sentences, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("read annotation file %s: %w", path, err)
	}
	return sentences, nil
}

// ParseReader returns the sentences found in r. A blank or
// whitespace-only line closes the sentence in progress; a line with
// fewer than two whitespace-delimited fields is dropped silently.
// The first field is the token, the last field the label; columns in
// between are ignored.
func ParseReader(r io.Reader) []Sentence {
	sentences, _ := parse(r)
	return sentences
}

func parse(r io.Reader) ([]Sentence, error) {
	var sentences []Sentence
	var current Sentence

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			// Stray annotation artifact, skip silently.
			continue
		}

		current = append(current, Token{
			Text:  fields[0],
			Label: fields[len(fields)-1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// A file without a trailing blank line still yields its last sentence.
	if len(current) > 0 {
		sentences = append(sentences, current)
	}

	return sentences, nil
}
