package parser

import (
	"iter"
	"strings"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
	"github.com/xuri/excelize/v2"
)

// ExcelizeReader is the primary reader, backed by excelize.
type ExcelizeReader struct{}

// Name implements Reader.
func (ExcelizeReader) Name() string { return "excelize" }

// Style implements Reader.
func (ExcelizeReader) Style() Style { return StyleTabs }

// Supports implements Reader.
func (ExcelizeReader) Supports(path string) bool { return isOOXML(path) }

// Open implements Reader.
func (ExcelizeReader) Open(path string) (models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	wb := &excelizeWorkbook{
		f:      f,
		styles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

type excelizeWorkbook struct {
	f *excelize.File
	// styles caches whether a style id displays dates.
	styles   map[int]bool
	date1904 bool
}

func (wb *excelizeWorkbook) SheetNames() []string {
	return wb.f.GetSheetList()
}

func (wb *excelizeWorkbook) Close() error {
	return wb.f.Close()
}

func (wb *excelizeWorkbook) Rows(sheetName string) iter.Seq2[models.Row, error] {
	return func(yield func(models.Row, error) bool) {
		width, err := wb.columnCount(sheetName)
		if err != nil {
			yield(nil, err)
			return
		}

		rows, err := wb.f.Rows(sheetName)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()

		rowNum := 0
		for rows.Next() {
			rowNum++ // 1-based row index
			values, err := rows.Columns(excelize.Options{RawCellValue: true})
			if err != nil {
				yield(nil, err)
				return
			}
			row, err := wb.extractRow(sheetName, rowNum, values)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(row.Pad(width), nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(nil, err)
		}
	}
}

// columnCount scans the sheet once to find its widest row.
// excelize trims trailing empty cells, so rows are padded to this width.
func (wb *excelizeWorkbook) columnCount(sheetName string) (int, error) {
	rows, err := wb.f.Rows(sheetName)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	width := 0
	for rows.Next() {
		values, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return 0, err
		}
		if len(values) > width {
			width = len(values)
		}
	}
	return width, rows.Error()
}

// extractRow converts raw cell values into typed cells.
func (wb *excelizeWorkbook) extractRow(sheetName string, rowNum int, values []string) (models.Row, error) {
	row := make(models.Row, len(values))
	for colIdx, raw := range values {
		cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			// Formulas without a cached result print as their source.
			formula, err := wb.f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			row[colIdx] = formulaCell(formula)
			continue
		}
		cell, err := wb.extractCell(sheetName, cellName, raw)
		if err != nil {
			return nil, err
		}
		row[colIdx] = cell
	}
	return row, nil
}

func (wb *excelizeWorkbook) extractCell(sheetName, cellName, raw string) (models.Cell, error) {
	cellType, err := wb.f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError,
		excelize.CellTypeFormula:
		// CellTypeFormula is t="str": a formula with a text result.
		return models.String(raw), nil
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	}

	// Numbers, dates and cached numeric formula results
	cell := models.ParseValue(raw)
	if cell.Kind != models.KindInt && cell.Kind != models.KindFloat {
		return cell, nil
	}
	isDate, err := wb.isDateCell(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	if !isDate {
		return cell, nil
	}
	serial := cell.Float
	if cell.Kind == models.KindInt {
		serial = float64(cell.Int)
	}
	t, err := excelize.ExcelDateToTime(serial, wb.date1904)
	if err != nil {
		// Out of range serials stay numeric.
		return cell, nil
	}
	return models.Date(t), nil
}

func (wb *excelizeWorkbook) isDateCell(sheetName, cellName string) (bool, error) {
	styleID, err := wb.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := wb.styles[styleID]; ok {
		return isDate, nil
	}

	style, err := wb.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	code := ""
	if style.CustomNumFmt != nil {
		code = *style.CustomNumFmt
	}
	isDate := isDateFormat(style.NumFmt, code)
	wb.styles[styleID] = isDate
	return isDate, nil
}

// formulaCell renders an uncached formula as "=<formula>", or an empty cell.
func formulaCell(formula string) models.Cell {
	if formula == "" {
		return models.Empty()
	}
	return models.String("=" + strings.TrimPrefix(formula, "="))
}
