package sheetdump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/sheetdump-go/internal/logger"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/parser"
)

// SelectReader picks the reader used for path.
// With ReaderAuto the first supporting reader that is not disabled wins;
// falling past the preferred one is logged as a warning.
func SelectReader(path string, opts Options) (parser.Reader, error) {
	name := opts.Reader
	if name == "" {
		name = ReaderAuto
	}

	if name != ReaderAuto {
		r, ok := parser.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown reader %q", name)
		}
		if opts.IsDisabled(name) {
			return nil, fmt.Errorf("%w: reader %q is disabled", ErrNoReader, name)
		}
		return r, nil
	}

	var preferred parser.Reader
	for _, r := range parser.Readers() {
		if !r.Supports(path) {
			continue
		}
		if preferred == nil {
			preferred = r
		}
		if opts.IsDisabled(r.Name()) {
			logger.Debug("Reader unavailable", "reader", r.Name())
			continue
		}
		if r != preferred {
			logger.Warn("Primary reader unavailable, trying alternate",
				"primary", preferred.Name(), "alternate", r.Name())
		}
		return r, nil
	}

	if preferred == nil {
		return nil, fmt.Errorf("%w for %q", ErrNoReader, path)
	}
	return nil, fmt.Errorf("%w: every reader for %q is disabled", ErrNoReader, path)
}

// Load opens the workbook at path with the selected reader.
func Load(path string, opts Options) (models.Workbook, parser.Reader, error) {
	// Validate input file exists
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrFileNotFound
		}
		return nil, nil, &FileAccessError{Path: path, Err: err}
	}

	r, err := SelectReader(path, opts)
	if err != nil {
		return nil, nil, err
	}

	wb, err := r.Open(path)
	if err != nil {
		return nil, nil, &FileAccessError{
			Path:   path,
			Reader: r.Name(),
			Err:    fmt.Errorf("%w: %v", ErrInvalidFormat, err),
		}
	}

	logger.Info("Opened workbook", "path", path, "reader", r.Name())
	return wb, r, nil
}

// ListSheets returns the workbook's sheet names in order.
func ListSheets(wb models.Workbook) []string {
	return wb.SheetNames()
}
