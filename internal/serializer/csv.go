// =============================================================================
// Data Formatter - CSV Serializer
// =============================================================================
//
// Serialization turns formatted records back into delimited text for the
// download and clipboard surfaces. The output contract:
//
//   - header row = the keys of the first record, in their already-sorted
//     order (the engine guarantees a uniform, sorted key set)
//   - every data cell is emitted fully quoted, embedded quotes doubled per
//     standard CSV quoting, so an empty value still appears as "" and a
//     re-parse recovers the exact string
//   - rows joined by a single newline, no trailing newline
//   - an empty record sequence serializes to the empty string, not a
//     header-only file
//
// =============================================================================

package serializer

import (
	"strings"

	"github.com/ginjaninja78/data-formatter/internal/record"
)

// Serialize renders formatted records as CSV text.
func Serialize(records []*record.FormattedRecord) string {
	if len(records) == 0 {
		return ""
	}

	headers := records[0].Keys()

	rows := make([]string, 0, len(records)+1)
	rows = append(rows, strings.Join(headers, ","))

	for _, rec := range records {
		cells := make([]string, len(headers))
		for i, h := range headers {
			value, _ := rec.Value(h)
			cells[i] = quoteField(value)
		}
		rows = append(rows, strings.Join(cells, ","))
	}

	return strings.Join(rows, "\n")
}

// quoteField wraps a value in double quotes, doubling embedded quotes.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
