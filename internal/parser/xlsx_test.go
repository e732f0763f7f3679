package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows onto the first sheet and returns the file bytes.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseXLSXFirstSheet(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]interface{}{
		{"Nome", "Telefone"},
		{"Maria", "(11) 98888-7777"},
		{"João", "(21) 97777-6666"},
	})

	ds, err := ParseXLSX(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Nome", "Telefone"}, ds.Headers)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, "Maria", ds.Records[0].Value("Nome").Text())
	assert.Equal(t, "(21) 97777-6666", ds.Records[1].Value("Telefone").Text())
}

func TestParseXLSXShortRowsPadWithNull(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]interface{}{
		{"A", "B", "C"},
		{"1", "2"},
	})

	ds, err := ParseXLSX(data)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "2", ds.Records[0].Value("B").Text())
	assert.True(t, ds.Records[0].Value("C").IsNull())
}

func TestParseXLSXRejectsEmptySheet(t *testing.T) {
	t.Parallel()

	_, err := ParseXLSX(buildWorkbook(t, nil))
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = ParseXLSX(buildWorkbook(t, [][]interface{}{{"Nome", "Telefone"}}))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestParseXLSXRejectsCorruptData(t *testing.T) {
	t.Parallel()

	_, err := ParseXLSX([]byte("not a workbook"))
	assert.Error(t, err)
}

func TestParseDispatchXLSX(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]interface{}{
		{"Código Prod.", "Quantidade"},
		{"ABC-1", "10"},
	})

	ds, err := Parse("estoque.xlsx", data)
	require.NoError(t, err)
	assert.Equal(t, "estoque.xlsx", ds.SourceFile)
	assert.Equal(t, "ABC-1", ds.Records[0].Value("Código Prod.").Text())
}
