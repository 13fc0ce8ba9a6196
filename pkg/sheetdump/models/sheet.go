package models

// Sheet identifies a single sheet within a workbook.
type Sheet struct {
	// Index is the 0-based position of the sheet in the workbook.
	Index int
	// Name is the sheet tab name.
	Name string
}

// Row is an ordered list of cells, padded to the sheet's column count.
type Row []Cell

// Strings renders every cell of the row with the given date layout.
func (r Row) Strings(dateLayout string) []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Format(dateLayout)
	}
	return out
}

// Pad returns the row extended with empty cells up to width.
func (r Row) Pad(width int) Row {
	for len(r) < width {
		r = append(r, Empty())
	}
	return r
}
