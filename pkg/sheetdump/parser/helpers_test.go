package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
	"github.com/xuri/excelize/v2"
)

// writeFixture saves a workbook with sheets "T1", "Empty" and "Types".
func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet so T1 is first.
	if err := f.SetSheetName("Sheet1", "T1"); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	f.SetCellValue("T1", "A1", "a")
	f.SetCellValue("T1", "B1", 1)
	f.SetCellValue("T1", "A2", "b")
	f.SetCellValue("T1", "B2", 2)
	f.SetCellValue("T1", "C2", 3)

	if _, err := f.NewSheet("Empty"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	if _, err := f.NewSheet("Types"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Types", "A1", 200.5)
	f.SetCellValue("Types", "B1", true)
	f.SetCellValue("Types", "C1", false)
	f.SetCellValue("Types", "D1", time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC))
	f.SetCellValue("Types", "E1", "text")

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// collectRows drains a sheet's rows into strings.
func collectRows(t *testing.T, wb models.Workbook, sheet string) [][]string {
	t.Helper()

	var out [][]string
	for row, err := range wb.Rows(sheet) {
		if err != nil {
			t.Fatalf("Rows(%q) failed: %v", sheet, err)
		}
		out = append(out, row.Strings(""))
	}
	return out
}

func assertRows(t *testing.T, got, expected [][]string) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %q", len(expected), len(got), got)
	}
	for i := range expected {
		if len(got[i]) != len(expected[i]) {
			t.Errorf("row %d: expected %d cells, got %d: %q", i, len(expected[i]), len(got[i]), got[i])
			continue
		}
		for j := range expected[i] {
			if got[i][j] != expected[i][j] {
				t.Errorf("row %d col %d: expected %q, got %q", i, j, expected[i][j], got[i][j])
			}
		}
	}
}
