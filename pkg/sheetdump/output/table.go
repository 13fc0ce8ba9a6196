package output

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// EmptySheetText is printed in place of a table for a sheet without data.
const EmptySheetText = "Empty sheet"

// RenderTable renders a grid as a bordered table. The first row becomes
// the column header and a 0-based index column is prepended.
// Empty edges are cropped first; it returns EmptySheetText if nothing is left.
func RenderTable(grid [][]string) string {
	grid = cropToData(grid)
	if len(grid) == 0 {
		return EmptySheetText
	}

	headers := []string{""}
	for colIdx, name := range grid[0] {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx)
		}
		headers = append(headers, name)
	}

	body := make([][]string, 0, len(grid)-1)
	for rowIdx, row := range grid[1:] {
		body = append(body, append([]string{strconv.Itoa(rowIdx)}, row...))
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(body...).
		String()
}

// WriteTableSheet writes a sheet header, the sheet rendered as a table,
// and two trailing blank lines. Rows are read fully before rendering.
func WriteTableSheet(w io.Writer, name string, rows iter.Seq2[models.Row, error], dateLayout string) error {
	var grid [][]string
	for row, err := range rows {
		if err != nil {
			return err
		}
		grid = append(grid, row.Strings(dateLayout))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n\n", SheetHeader(name), RenderTable(grid))
	return err
}
