package sheetdump

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be parsed as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrNoReader indicates no available reader supports the input file.
var ErrNoReader = errors.New("no spreadsheet reader available")

// FileAccessError represents a failure to open a workbook.
type FileAccessError struct {
	Path   string
	Reader string
	Err    error
}

func (e *FileAccessError) Error() string {
	if e.Reader == "" {
		return fmt.Sprintf("cannot open %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot open %q with %s reader: %v", e.Path, e.Reader, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ReadError represents a failure while reading or writing a sheet.
type ReadError struct {
	SheetName string
	Err       error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading sheet %q: %v", e.SheetName, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
