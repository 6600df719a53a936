package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// CountRow is one frequency table entry prepared for export.
type CountRow struct {
	Name  string
	Count int
}

// SortedCounts flattens a frequency table into rows ordered by count
// descending, ties broken by name, so exports are byte-stable.
func SortedCounts(counts map[string]int) []CountRow {
	rows := make([]CountRow, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, CountRow{Name: name, Count: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// WriteJSON writes an indented JSON document, creating parent
// directories as needed.
func WriteJSON(path string, v any) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	content = append(content, '\n')

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write json %s: %w", path, err)
	}
	return nil
}

// CountCSV writes a frequency table as CSV with the given name column
// header and a count column.
func CountCSV(w io.Writer, column string, counts map[string]int) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{column, "count"}); err != nil {
		return err
	}
	for _, row := range SortedCounts(counts) {
		if err := cw.Write([]string{row.Name, strconv.Itoa(row.Count)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCountCSV writes a frequency table as a CSV file.
func WriteCountCSV(path, column string, counts map[string]int) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}
	defer f.Close()

	if err := CountCSV(f, column, counts); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	return nil
}

// WriteTagList writes tags one per line.
func WriteTagList(path string, tags []string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create tag list %s: %w", path, err)
	}
	defer f.Close()

	for _, tag := range tags {
		if _, err := fmt.Fprintln(f, tag); err != nil {
			return fmt.Errorf("write tag list %s: %w", path, err)
		}
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
