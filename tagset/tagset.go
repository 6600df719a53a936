// Package tagset loads the canonical entity tagset and reconciles it
// against the types actually observed in a corpus.
package tagset

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// BaseGroup collects tags without an underscore prefix (core types).
const BaseGroup = "BASE"

// headerMarker identifies the optional first header line of a tagset
// definition file. A heuristic, not schema validation.
const headerMarker = "Named Entity"

// Result holds both directions of the tagset/corpus comparison as
// sorted lists. A tag present on both sides appears in neither.
type Result struct {
	// UnusedInCorpus: defined in the tagset but never observed.
	UnusedInCorpus []string `json:"unused_in_corpus"`

	// UnknownInTagset: observed in the corpus but not defined.
	UnknownInTagset []string `json:"unknown_in_tagset"`
}

// Load reads a comma-delimited tagset definition file and returns the
// sorted unique tag list. The first line is skipped if it contains the
// header marker; for every other non-blank line the first comma field
// is trimmed and, if non-empty, collected.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tagset file %s: %w", path, err)
	}
	defer f.Close()

	seen := map[string]struct{}{}

	scanner := bufio.NewScanner(f)
	for lineNum := 0; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if lineNum == 0 && strings.Contains(line, headerMarker) {
			continue
		}

		first := strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
		if first != "" {
			seen[first] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tagset file %s: %w", path, err)
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// GroupByPrefix groups tags by the substring before the first
// underscore (FAC_AIRPORT -> FAC). Tags without an underscore land in
// BaseGroup. Tags inside each group are sorted.
func GroupByPrefix(tags []string) map[string][]string {
	groups := map[string][]string{}

	for _, tag := range tags {
		prefix := BaseGroup
		if i := strings.Index(tag, "_"); i >= 0 {
			prefix = tag[:i]
		}
		groups[prefix] = append(groups[prefix], tag)
	}

	for prefix := range groups {
		sort.Strings(groups[prefix])
	}
	return groups
}

// Reconcile computes the set differences between the defined tagset
// and the entity types observed in the corpus (the keys of the type
// frequency table).
func Reconcile(tags []string, observed map[string]int) Result {
	defined := map[string]struct{}{}
	for _, tag := range tags {
		defined[tag] = struct{}{}
	}

	var unused []string
	for _, tag := range tags {
		if _, ok := observed[tag]; !ok {
			unused = append(unused, tag)
		}
	}

	var unknown []string
	for typ := range observed {
		if _, ok := defined[typ]; !ok {
			unknown = append(unknown, typ)
		}
	}

	sort.Strings(unused)
	sort.Strings(unknown)
	return Result{UnusedInCorpus: unused, UnknownInTagset: unknown}
}
