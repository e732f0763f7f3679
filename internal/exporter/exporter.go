// =============================================================================
// Data Formatter - Export Surfaces
// =============================================================================
//
// Two ways out: a CSV file on disk (the "download") and the system
// clipboard (the "copy"). Both serialize the same formatted records with
// the same serializer, and both refuse to run on an empty formatted set:
// exporting nothing is a warning-level no-op, not an error that aborts
// anything, and callers detect it with errors.Is(err, ErrNoData).
//
// =============================================================================

package exporter

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/ginjaninja78/data-formatter/internal/record"
	"github.com/ginjaninja78/data-formatter/internal/serializer"
)

// MIMEType is the content type of the exported data.
const MIMEType = "text/csv"

// DefaultFileName is the fixed download name when no naming pattern is
// configured.
const DefaultFileName = "dados_formatados.csv"

// ErrNoData signals that an export was requested with no formatted records.
// The operation performs no file or clipboard work; callers surface it as a
// notice, not a failure.
var ErrNoData = errors.New("no formatted data to export; format the data first")

// Clipboard abstracts the system clipboard so tests can capture writes.
type Clipboard interface {
	WriteAll(text string) error
}

// systemClipboard is the real clipboard backed by atotto/clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Exporter writes formatted records to a file or the clipboard.
type Exporter struct {
	clip Clipboard
}

// New creates an Exporter using the system clipboard.
func New() *Exporter {
	return &Exporter{clip: systemClipboard{}}
}

// NewWithClipboard creates an Exporter with an injected clipboard.
func NewWithClipboard(clip Clipboard) *Exporter {
	return &Exporter{clip: clip}
}

// WriteFile serializes the records and writes them to path. Returns
// ErrNoData (and writes nothing) when records is empty.
func (e *Exporter) WriteFile(records []*record.FormattedRecord, path string) error {
	if len(records) == 0 {
		return ErrNoData
	}

	csv := serializer.Serialize(records)
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// CopyToClipboard serializes the records onto the system clipboard. Returns
// ErrNoData (and touches nothing) when records is empty.
func (e *Exporter) CopyToClipboard(records []*record.FormattedRecord) error {
	if len(records) == 0 {
		return ErrNoData
	}

	if err := e.clip.WriteAll(serializer.Serialize(records)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
