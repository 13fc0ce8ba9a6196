// Package output renders workbooks as text.
package output

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// Separator joins the cells of a row.
const Separator = "\t"

// SheetHeader returns the line that introduces a sheet.
func SheetHeader(name string) string {
	return fmt.Sprintf("=== Sheet: %s ===", name)
}

// FormatSheetList renders the list of sheet names.
// Names are quoted with single quotes unless they contain one.
func FormatSheetList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteName(name)
	}
	return fmt.Sprintf("Available sheets: [%s]", strings.Join(quoted, ", "))
}

func quoteName(name string) string {
	if strings.Contains(name, "'") && !strings.Contains(name, `"`) {
		return `"` + name + `"`
	}
	return "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
}

// FormatRow joins a row's cells with Separator.
func FormatRow(row models.Row, dateLayout string) string {
	return strings.Join(row.Strings(dateLayout), Separator)
}

// DumpSheet lazily renders each row as one tab-separated line.
// Iteration stops at the first read error.
func DumpSheet(rows iter.Seq2[models.Row, error], dateLayout string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for row, err := range rows {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(FormatRow(row, dateLayout), nil) {
				return
			}
		}
	}
}

// WriteTabSheet writes a sheet header, a blank line, one line per row,
// and two trailing blank lines.
func WriteTabSheet(w io.Writer, name string, rows iter.Seq2[models.Row, error], dateLayout string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", SheetHeader(name)); err != nil {
		return err
	}
	for line, err := range DumpSheet(rows, dateLayout) {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n\n")
	return err
}
