package models

import "iter"

// Workbook is a read-only workbook opened by a reader.
type Workbook interface {
	// SheetNames returns sheet names in persisted order.
	SheetNames() []string
	// Rows lazily yields the rows of a sheet top to bottom.
	// Every row has the same width: the sheet's column count as read.
	Rows(sheet string) iter.Seq2[Row, error]
	// Close releases the underlying file.
	Close() error
}

// Sheets returns the workbook's sheets in order.
func Sheets(wb Workbook) []Sheet {
	names := wb.SheetNames()
	sheets := make([]Sheet, len(names))
	for i, name := range names {
		sheets[i] = Sheet{Index: i, Name: name}
	}
	return sheets
}
