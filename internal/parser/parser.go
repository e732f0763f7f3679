// =============================================================================
// Data Formatter - Tabular Parser
// =============================================================================
//
// This package turns raw file bytes into a record.Dataset: an ordered
// sequence of uniform records keyed by the source header row. Two input
// encodings are handled:
//
//   - .csv  : delimited text (see csv.go)
//   - .xlsx : spreadsheet binary, first sheet only (see xlsx.go)
//
// Any other extension is rejected with ErrUnsupportedFormat before any data
// is touched, so a failed parse never leaves partial state behind.
//
// =============================================================================

package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/data-formatter/internal/record"
)

// ErrUnsupportedFormat is returned when the file extension is neither
// .csv nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format (use .csv or .xlsx)")

// ErrNoRecords is returned when a file is recognized but yields no data
// rows (empty file, header-only file, or a sheet with no data).
var ErrNoRecords = errors.New("file contains no data rows")

// Parse parses raw file bytes into a Dataset. The file name is used only to
// select the parser by extension and to label the resulting Dataset.
func Parse(fileName string, data []byte) (*record.Dataset, error) {
	var (
		ds  *record.Dataset
		err error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		ds, err = ParseCSV(data)
	case ".xlsx":
		ds, err = ParseXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileName)
	}

	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", fileName, err)
	}

	ds.SourceFile = fileName
	return ds, nil
}

// ParseFile reads and parses a file from disk.
func ParseFile(path string) (*record.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(filepath.Base(path), data)
}

// cleanHeaders trims header cells and gives empty ones a positional name so
// every column stays addressable.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = h
	}
	return cleaned
}

// isRowEmpty reports whether every cell in a row is blank.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
