package sheetdump

import (
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/sheetdump-go/internal/logger"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/output"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/parser"
)

// Run loads the workbook at path and writes every sheet to w.
// Output already written for earlier sheets stands if a later one fails.
func Run(w io.Writer, path string, opts Options) (err error) {
	wb, r, err := Load(path, opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, wb.Close())
	}()

	return Dump(w, wb, r.Style(), opts)
}

// Dump writes the sheet list followed by every sheet of wb.
func Dump(w io.Writer, wb models.Workbook, style parser.Style, opts Options) error {
	names := ListSheets(wb)
	if _, err := fmt.Fprintf(w, "%s\n\n", output.FormatSheetList(names)); err != nil {
		return err
	}

	writeSheet := output.WriteTabSheet
	if style == parser.StyleTable {
		writeSheet = output.WriteTableSheet
	}

	for _, sheet := range models.Sheets(wb) {
		logger.Debug("Dumping sheet", "sheet", sheet.Name, "index", sheet.Index)
		if err := writeSheet(w, sheet.Name, wb.Rows(sheet.Name), opts.dateLayout()); err != nil {
			return &ReadError{SheetName: sheet.Name, Err: err}
		}
	}
	return nil
}
