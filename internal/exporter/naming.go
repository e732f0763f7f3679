// =============================================================================
// Data Formatter - Export File Naming
// =============================================================================
//
// The export file name can follow a configured pattern so repeated exports
// do not clobber each other. Supported placeholders:
//
//   {name}      - the source file name without extension
//   {timestamp} - current time as YYYYMMDD_HHMMSS
//   {uuid}      - a random UUID
//
// An empty pattern falls back to the fixed DefaultFileName literal.
//
// =============================================================================

package exporter

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampLayout is the {timestamp} placeholder format.
const timestampLayout = "20060102_150405"

// FileName expands a naming pattern for one export. sourceName is the name
// of the originally uploaded file (may be empty).
func FileName(pattern, sourceName string, now time.Time) string {
	if pattern == "" {
		return DefaultFileName
	}

	base := strings.TrimSuffix(filepath.Base(sourceName), filepath.Ext(sourceName))
	if base == "" || base == "." {
		base = "dados"
	}

	name := pattern
	name = strings.ReplaceAll(name, "{name}", base)
	name = strings.ReplaceAll(name, "{timestamp}", now.Format(timestampLayout))
	name = strings.ReplaceAll(name, "{uuid}", uuid.NewString())

	if filepath.Ext(name) == "" {
		name += ".csv"
	}
	return name
}
