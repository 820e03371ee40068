package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smoothaha/pkg/segments"
)

// TestLoad verifies parsing of a well-formed data file
func TestLoad(t *testing.T) {
	filename := writeTestCSV(t, "strain_17.csv", [][]string{
		append([]string{"case_id"}, segments.Names17...),
		append([]string{"patient_001"}, repeat("-18", 17)...),
		append([]string{"patient_002"}, repeat("-21.5", 17)...),
	})

	table, err := Load(filename)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Expected 2 cases, got %d", table.Len())
	}
	if table.Biomarker() != "strain" {
		t.Errorf("Biomarker: got %q, want %q", table.Biomarker(), "strain")
	}

	ids := table.CaseIDs()
	if len(ids) != 2 || ids[0] != "patient_001" || ids[1] != "patient_002" {
		t.Errorf("CaseIDs: got %v", ids)
	}

	c, err := table.Case("patient_002")
	if err != nil {
		t.Fatalf("Case failed: %v", err)
	}
	if c.ID != "patient_002" || c.Biomarker != "strain" {
		t.Errorf("Case metadata: %+v", c)
	}
	if c.Values["Apex"] != -21.5 {
		t.Errorf("Apex value: got %v, want -21.5", c.Values["Apex"])
	}

	// Loaded cases must validate as segment value sets
	if _, err := segments.FromNamed(c.Values); err != nil {
		t.Errorf("Loaded case does not form a valid value set: %v", err)
	}
}

// TestLoadMissingCase verifies the unknown-case error
func TestLoadMissingCase(t *testing.T) {
	filename := writeTestCSV(t, "strain_17.csv", [][]string{
		append([]string{"case_id"}, segments.Names17...),
		append([]string{"patient_001"}, repeat("-18", 17)...),
	})

	table, err := Load(filename)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := table.Case("patient_999"); err == nil {
		t.Error("Expected an error for an unknown case")
	}
}

// TestLoadBadValue verifies that non-numeric cells are reported with
// case and segment context
func TestLoadBadValue(t *testing.T) {
	row := repeat("-18", 17)
	row[3] = "n/a"
	filename := writeTestCSV(t, "strain_17.csv", [][]string{
		append([]string{"case_id"}, segments.Names17...),
		append([]string{"patient_001"}, row...),
	})

	_, err := Load(filename)
	if err == nil {
		t.Fatal("Expected a parse error")
	}
	if !strings.Contains(err.Error(), "patient_001") || !strings.Contains(err.Error(), segments.Names17[3]) {
		t.Errorf("Error should name the case and segment: %v", err)
	}
}

// TestLoadEmpty verifies rejection of files without cases
func TestLoadEmpty(t *testing.T) {
	filename := writeTestCSV(t, "strain_17.csv", [][]string{
		append([]string{"case_id"}, segments.Names17...),
	})

	if _, err := Load(filename); err == nil {
		t.Error("Expected an error for a file with no cases")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

// TestBiomarkerFromStem verifies biomarker extraction from file names
func TestBiomarkerFromStem(t *testing.T) {
	testCases := []struct {
		filename string
		want     string
	}{
		{"strain_17.csv", "strain"},
		{"myocardial_work_18.csv", "myocardial_work"},
		{"/data/wall_thickness_17.csv", "wall_thickness"},
		{"cohort.csv", "cohort"},
		{"strain_final.csv", "strain_final"},
	}

	for _, tc := range testCases {
		if got := biomarkerFromStem(tc.filename); got != tc.want {
			t.Errorf("biomarkerFromStem(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

// Helper functions for tests

func writeTestCSV(t *testing.T, name string, rows [][]string) string {
	t.Helper()

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return filename
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
