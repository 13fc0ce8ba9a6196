package parser

import (
	"fmt"
	"iter"

	"github.com/tealeg/xlsx"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// XLSXReader is the alternate reader, backed by tealeg/xlsx.
// It loads the whole workbook into memory and renders sheets as tables.
type XLSXReader struct{}

// Name implements Reader.
func (XLSXReader) Name() string { return "xlsx" }

// Style implements Reader.
func (XLSXReader) Style() Style { return StyleTable }

// Supports implements Reader.
func (XLSXReader) Supports(path string) bool { return isOOXML(path) }

// Open implements Reader.
func (XLSXReader) Open(path string) (models.Workbook, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{f: f}, nil
}

type xlsxWorkbook struct {
	f *xlsx.File
}

func (wb *xlsxWorkbook) SheetNames() []string {
	names := make([]string, len(wb.f.Sheets))
	for i, sheet := range wb.f.Sheets {
		names[i] = sheet.Name
	}
	return names
}

// Close is a no-op: tealeg/xlsx reads the file fully on open.
func (wb *xlsxWorkbook) Close() error { return nil }

func (wb *xlsxWorkbook) Rows(sheetName string) iter.Seq2[models.Row, error] {
	return func(yield func(models.Row, error) bool) {
		sheet, ok := wb.f.Sheet[sheetName]
		if !ok {
			yield(nil, fmt.Errorf("sheet %q does not exist", sheetName))
			return
		}

		width := sheet.MaxCol
		for _, row := range sheet.Rows {
			if row != nil && len(row.Cells) > width {
				width = len(row.Cells)
			}
		}

		for _, row := range sheet.Rows {
			var cells models.Row
			if row != nil {
				cells = make(models.Row, 0, len(row.Cells))
				for _, cell := range row.Cells {
					cells = append(cells, wb.convertCell(cell))
				}
			}
			if !yield(cells.Pad(width), nil) {
				return
			}
		}
	}
}

func (wb *xlsxWorkbook) convertCell(cell *xlsx.Cell) models.Cell {
	if cell == nil {
		return models.Empty()
	}
	if cell.Value == "" {
		return formulaCell(cell.Formula())
	}

	switch cell.Type() {
	case xlsx.CellTypeBool:
		return models.Bool(cell.Bool())
	case xlsx.CellTypeString, xlsx.CellTypeStringFormula, xlsx.CellTypeInline, xlsx.CellTypeError:
		return models.String(cell.Value)
	case xlsx.CellTypeDate:
		if t, err := cell.GetTime(wb.f.Date1904); err == nil {
			return models.Date(t)
		}
		return models.String(cell.Value)
	}

	// Numbers and cached numeric formula results
	value := models.ParseValue(cell.Value)
	if value.Kind != models.KindInt && value.Kind != models.KindFloat {
		return value
	}
	if isDateFormat(-1, cell.GetNumberFormat()) {
		if t, err := cell.GetTime(wb.f.Date1904); err == nil {
			return models.Date(t)
		}
	}
	return value
}
