package parser

import (
	"path/filepath"
	"testing"
)

func TestXLSXReader(t *testing.T) {
	wb, err := XLSXReader{}.Open(writeFixture(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if len(names) != 3 || names[0] != "T1" || names[1] != "Empty" || names[2] != "Types" {
		t.Fatalf("Unexpected sheet names: %v", names)
	}

	assertRows(t, collectRows(t, wb, "T1"), [][]string{
		{"a", "1", ""},
		{"b", "2", "3"},
	})
	assertRows(t, collectRows(t, wb, "Empty"), nil)
}

func TestXLSXReaderStyle(t *testing.T) {
	if (XLSXReader{}).Style() != StyleTable {
		t.Error("xlsx reader should render tables")
	}
	if (ExcelizeReader{}).Style() != StyleTabs {
		t.Error("excelize reader should render tab-separated rows")
	}
}

func TestXLSXOpenMissingFile(t *testing.T) {
	_, err := XLSXReader{}.Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestXLSOpenInvalidFile(t *testing.T) {
	_, err := XLSReader{}.Open(writeFixture(t))
	if err == nil {
		t.Fatal("Expected error opening an xlsx file as xls")
	}
}
