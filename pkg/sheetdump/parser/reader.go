// Package parser provides the workbook readers used by sheetdump.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// Style describes how a reader's sheets are printed.
type Style string

const (
	// StyleTabs prints one tab-separated line per row.
	StyleTabs Style = "tabs"
	// StyleTable prints each sheet as an aligned table with a header row.
	StyleTable Style = "table"
)

// Reader opens workbooks of the formats it supports.
type Reader interface {
	// Name is the reader's identifier, used by --reader and --disable.
	Name() string
	// Style is the rendering used for this reader's output.
	Style() Style
	// Supports reports whether the reader handles the file at path.
	Supports(path string) bool
	// Open loads the workbook at path.
	Open(path string) (models.Workbook, error)
}

// Readers returns every built-in reader in preference order.
func Readers() []Reader {
	return []Reader{
		ExcelizeReader{},
		XLSXReader{},
		XLSReader{},
	}
}

// Lookup returns the built-in reader with the given name.
func Lookup(name string) (Reader, bool) {
	for _, r := range Readers() {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Names returns the names of the built-in readers.
func Names() []string {
	readers := Readers()
	names := make([]string, len(readers))
	for i, r := range readers {
		names[i] = r.Name()
	}
	return names
}

var ooxmlExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

func isOOXML(path string) bool {
	return ooxmlExts[strings.ToLower(filepath.Ext(path))]
}
