// Package dataset loads tabular biomarker data. The expected layout is a
// CSV file with an index column of case identifiers and one column per
// canonical AHA segment name; the file stem encodes the biomarker and the
// segment count, e.g. strain_17.csv.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"smoothaha/internal/models"
)

// Table holds all cases of one loaded file.
type Table struct {
	biomarker string
	columns   []string
	order     []string
	rows      map[string]map[string]float64
}

// Load reads a CSV data file. Every row must have a value for every
// segment column; parsing failures name the offending cell.
func Load(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("data file %s has no cases", filename)
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("data file %s has no segment columns", filename)
	}

	t := &Table{
		biomarker: biomarkerFromStem(filename),
		columns:   header[1:],
		rows:      make(map[string]map[string]float64, len(records)-1),
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("case %q has %d columns, want %d", record[0], len(record), len(header))
		}
		id := record[0]
		values := make(map[string]float64, len(t.columns))
		for i, col := range t.columns {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("case %q, segment %q: %w", id, col, err)
			}
			values[col] = v
		}
		t.rows[id] = values
		t.order = append(t.order, id)
	}
	return t, nil
}

// biomarkerFromStem extracts the biomarker name from a file stem of the
// form <biomarker>_<segments>, or returns the whole stem.
func biomarkerFromStem(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if i := strings.LastIndex(stem, "_"); i > 0 {
		if _, err := strconv.Atoi(stem[i+1:]); err == nil {
			return stem[:i]
		}
	}
	return stem
}

// Biomarker returns the biomarker name derived from the file name.
func (t *Table) Biomarker() string { return t.biomarker }

// Len returns the number of cases.
func (t *Table) Len() int { return len(t.order) }

// CaseIDs returns the case identifiers in file order.
func (t *Table) CaseIDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Case returns a single case with its named segment values.
func (t *Table) Case(id string) (models.Case, error) {
	values, ok := t.rows[id]
	if !ok {
		return models.Case{}, fmt.Errorf("no case %q in dataset (have %d cases)", id, len(t.rows))
	}
	out := make(map[string]float64, len(values))
	for k, v := range values {
		out[k] = v
	}
	return models.Case{ID: id, Biomarker: t.biomarker, Values: out}, nil
}
