// =============================================================================
// Data Formatter - Delimited Text Parser
// =============================================================================
//
// Parsing follows the format the legacy exports actually use: one record per
// line, fields separated by commas, first line is the header. Fields emitted
// by our own serializer are fully quoted, so surrounding double quotes are
// stripped (with doubled quotes collapsed) to make serialize -> parse a
// round trip.
//
// KNOWN LIMITATION: commas inside quoted fields are not supported; a quoted
// field containing a comma will be split at the comma. The exports this tool
// consumes never produce such fields.
//
// =============================================================================

package parser

import (
	"strings"

	"github.com/ginjaninja78/data-formatter/internal/record"
)

// ParseCSV parses comma-delimited text.
//
// Rules:
//   - The first line is the header; each header cell is trimmed.
//   - Data lines are split on commas positionally against the header.
//   - A short line leaves the trailing columns as explicit nulls; extra
//     cells beyond the header length are dropped.
//   - Blank lines (including a trailing newline) are skipped.
func ParseCSV(data []byte) (*record.Dataset, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, ErrNoRecords
	}

	headers := cleanHeaders(strings.Split(lines[0], ","))

	records := make([]record.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := strings.Split(line, ",")
		rec := record.New(headers)
		for i, header := range headers {
			if i < len(cells) {
				rec.Set(header, record.String(unquoteCell(cells[i])))
			} else {
				rec.Set(header, record.Null())
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return &record.Dataset{
		Headers:     headers,
		Records:     records,
		RowCount:    len(records),
		ColumnCount: len(headers),
	}, nil
}

// unquoteCell trims a cell and strips one pair of surrounding double quotes,
// collapsing doubled quotes inside. Unquoted cells pass through trimmed.
func unquoteCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 && cell[0] == '"' && cell[len(cell)-1] == '"' {
		inner := cell[1 : len(cell)-1]
		return strings.ReplaceAll(inner, `""`, `"`)
	}
	return cell
}
