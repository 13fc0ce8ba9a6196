package parser

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/xuri/excelize/v2"
)

// cachedStringFormula is a formula whose cached text result looks numeric.
const cachedStringFormula = `<c r="A1" t="str"><f>"007"</f><v>007</v></c>`

// writeFormulaFixture saves a workbook whose first sheet holds a formula
// with a cached text result, plus formulas that were never calculated.
func writeFormulaFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellStr("Sheet1", "A1", "placeholder")
	f.SetCellStr("Sheet1", "B1", "007")
	if err := f.SetCellFormula("Sheet1", "A2", "SUM(B3:C3)"); err != nil {
		t.Fatalf("Failed to set formula: %v", err)
	}
	f.SetCellStr("Sheet1", "B2", "end")
	f.SetCellStr("Sheet1", "A3", "a")
	if err := f.SetCellFormula("Sheet1", "B3", `A3&"b"`); err != nil {
		t.Fatalf("Failed to set formula: %v", err)
	}

	dir := t.TempDir()
	saved := filepath.Join(dir, "saved.xlsx")
	if err := f.SaveAs(saved); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// excelize cannot write a cached formula result, so patch the sheet XML.
	path := filepath.Join(dir, "formula.xlsx")
	a1 := regexp.MustCompile(`<c r="A1"[^>]*>.*?</c>`)
	rewriteZipEntry(t, saved, path, "xl/worksheets/sheet1.xml", func(data []byte) []byte {
		if !a1.Match(data) {
			t.Fatalf("A1 not found in sheet XML: %s", data)
		}
		return a1.ReplaceAll(data, []byte(cachedStringFormula))
	})
	return path
}

func rewriteZipEntry(t *testing.T, src, dst, name string, edit func([]byte) []byte) {
	t.Helper()

	r, err := zip.OpenReader(src)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", src, err)
	}
	defer r.Close()

	out, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", dst, err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	for _, entry := range r.File {
		rc, err := entry.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read %s: %v", entry.Name, err)
		}
		if entry.Name == name {
			data = edit(data)
		}
		fw, err := w.Create(entry.Name)
		if err != nil {
			t.Fatalf("Failed to write %s: %v", entry.Name, err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("Failed to write %s: %v", entry.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
}

var formulaRows = [][]string{
	{"007", "007"},
	{"=SUM(B3:C3)", "end"},
	{"a", `=A3&"b"`},
}

func TestExcelizeFormulaCells(t *testing.T) {
	wb, err := ExcelizeReader{}.Open(writeFormulaFixture(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	assertRows(t, collectRows(t, wb, "Sheet1"), formulaRows)
}

func TestXLSXFormulaCells(t *testing.T) {
	wb, err := XLSXReader{}.Open(writeFormulaFixture(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	assertRows(t, collectRows(t, wb, "Sheet1"), formulaRows)
}

func TestFormulaCell(t *testing.T) {
	tests := []struct {
		formula  string
		expected string
	}{
		{"", ""},
		{"SUM(A1:B1)", "=SUM(A1:B1)"},
		{"=SUM(A1:B1)", "=SUM(A1:B1)"},
	}

	for _, tt := range tests {
		result := formulaCell(tt.formula).String()
		if result != tt.expected {
			t.Errorf("formulaCell(%q) = %q, expected %q", tt.formula, result, tt.expected)
		}
	}
}
