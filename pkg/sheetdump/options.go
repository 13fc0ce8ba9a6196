// Package sheetdump prints the contents of a spreadsheet workbook as text.
package sheetdump

import (
	"slices"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// ReaderAuto selects the first available reader that supports the file.
const ReaderAuto = "auto"

// Options configures how a workbook is loaded and printed.
type Options struct {
	// Reader is a reader name or ReaderAuto.
	Reader string
	// Disabled lists reader names treated as unavailable.
	Disabled []string
	// DateLayout is the Go time layout used for date cells.
	DateLayout string
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Reader:     ReaderAuto,
		DateLayout: models.DefaultDateLayout,
	}
}

// IsDisabled reports whether the named reader is unavailable.
func (o Options) IsDisabled(name string) bool {
	return slices.Contains(o.Disabled, name)
}

func (o Options) dateLayout() string {
	if o.DateLayout == "" {
		return models.DefaultDateLayout
	}
	return o.DateLayout
}
