// =============================================================================
// Data Formatter - Spreadsheet Parser
// =============================================================================
//
// XLSX input is read with excelize. Only the first sheet is consumed: the
// sheet's first row is the header and every following row becomes a record.
// Cells missing from a short row are stored as explicit nulls, mirroring the
// delimited-text parser, so the engine sees one uniform row model regardless
// of the input encoding.
//
// =============================================================================

package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/data-formatter/internal/record"
)

// ParseXLSX parses spreadsheet bytes, first sheet only.
func ParseXLSX(data []byte) (*record.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 || isRowEmpty(rows[0]) {
		return nil, ErrNoRecords
	}

	headers := cleanHeaders(rows[0])

	records := make([]record.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rec := record.New(headers)
		for i, header := range headers {
			if i < len(row) {
				rec.Set(header, record.String(row[i]))
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
