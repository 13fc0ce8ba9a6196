package parser

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// xlsCharset is the charset used to decode legacy string records.
const xlsCharset = "utf-8"

// XLSReader reads legacy BIFF (.xls) workbooks via extrame/xls.
// The library exposes cells as display strings, so numbers are
// recovered with models.ParseValue and dates stay as text.
type XLSReader struct{}

// Name implements Reader.
func (XLSReader) Name() string { return "xls" }

// Style implements Reader.
func (XLSReader) Style() Style { return StyleTabs }

// Supports implements Reader.
func (XLSReader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xls")
}

// Open implements Reader.
func (XLSReader) Open(path string) (wb models.Workbook, err error) {
	// extrame/xls panics on some malformed BIFF streams.
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("malformed xls file: %v", r)
		}
	}()

	book, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, err
	}
	return &xlsWorkbook{wb: book}, nil
}

type xlsWorkbook struct {
	wb *xls.WorkBook
}

func (w *xlsWorkbook) SheetNames() []string {
	names := make([]string, 0, w.wb.NumSheets())
	for i := 0; i < w.wb.NumSheets(); i++ {
		if sheet := w.wb.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

// Close is a no-op: extrame/xls reads the file fully on open.
func (w *xlsWorkbook) Close() error { return nil }

func (w *xlsWorkbook) Rows(sheetName string) iter.Seq2[models.Row, error] {
	return func(yield func(models.Row, error) bool) {
		sheet := w.sheet(sheetName)
		if sheet == nil {
			yield(nil, fmt.Errorf("sheet %q does not exist", sheetName))
			return
		}
		// An empty sheet reports MaxRow 0 and no row records.
		if sheet.MaxRow == 0 && sheet.Row(0) == nil {
			return
		}

		numRows := int(sheet.MaxRow) + 1
		rows := make([]models.Row, numRows)
		width := 0
		for i := range rows {
			rows[i] = readXLSRow(sheet.Row(i))
			if len(rows[i]) > width {
				width = len(rows[i])
			}
		}

		for _, row := range rows {
			if !yield(row.Pad(width), nil) {
				return
			}
		}
	}
}

// readXLSRow converts a row record, dropping trailing empty cells.
func readXLSRow(row *xls.Row) models.Row {
	if row == nil {
		return nil
	}
	var cells models.Row
	for col := 0; col <= row.LastCol(); col++ {
		cells = append(cells, models.ParseValue(row.Col(col)))
	}
	for len(cells) > 0 && cells[len(cells)-1].IsEmpty() {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func (w *xlsWorkbook) sheet(name string) *xls.WorkSheet {
	for i := 0; i < w.wb.NumSheets(); i++ {
		if sheet := w.wb.GetSheet(i); sheet != nil && sheet.Name == name {
			return sheet
		}
	}
	return nil
}
