package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
	"github.com/xuri/excelize/v2"
)

// saveAndOpen writes f into a temp dir and reopens it, so reads go through
// the same code path as a workbook on disk.
func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))
	require.NoError(t, f.Close())

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadSheet(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	sheet, err := ReadSheet(saveAndOpen(t, f), sheetName)
	require.NoError(t, err)

	assert.Equal(t, []string{"Header1", "Header2"}, sheet.Columns)
	assert.Equal(t, "A1:B3", sheet.Range)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, models.KindInt, sheet.Rows[0][0].Kind)
	assert.Equal(t, int64(100), sheet.Rows[0][0].Int)
	assert.Equal(t, models.KindFloat, sheet.Rows[0][1].Kind)
	assert.Equal(t, 200.5, sheet.Rows[0][1].Float)
	assert.Equal(t, models.KindText, sheet.Rows[1][0].Kind)
	assert.True(t, sheet.Rows[1][1].IsMissing(), "short rows are padded with missing cells")
}

func TestReadSheetSkipsLeadingBlankRowsKeepsBlankColumns(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "C3", "Region")
	f.SetCellValue(sheetName, "D3", "Revenue")
	f.SetCellValue(sheetName, "C4", "East")
	f.SetCellValue(sheetName, "D4", 10)

	sheet, err := ReadSheet(saveAndOpen(t, f), sheetName)
	require.NoError(t, err)

	assert.Equal(t, []string{"Unnamed: 0", "Unnamed: 1", "Region", "Revenue"}, sheet.Columns)
	assert.Equal(t, "A3:D4", sheet.Range)
	require.Len(t, sheet.Rows, 1)
	assert.True(t, sheet.Rows[0][0].IsMissing())
	assert.True(t, sheet.Rows[0][1].IsMissing())
	assert.Equal(t, "East", sheet.Rows[0][2].Text)
	assert.Equal(t, models.TypeFloat, InferColumnType(sheet.Column(0)))
}

func TestReadSheetKeepsInteriorBlankRows(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "n")
	f.SetCellValue(sheetName, "A2", 1)
	f.SetCellValue(sheetName, "A4", 3)

	sheet, err := ReadSheet(saveAndOpen(t, f), sheetName)
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 3)
	assert.True(t, sheet.Rows[1][0].IsMissing())
}

func TestReadSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	sheet, err := ReadSheet(saveAndOpen(t, f), "Sheet1")
	require.NoError(t, err)

	assert.Empty(t, sheet.Columns)
	assert.Empty(t, sheet.Rows)
	assert.Empty(t, sheet.Range)
}

func TestReadSheetHeaderOnly(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Region")
	f.SetCellValue("Sheet1", "B1", "Revenue")

	sheet, err := ReadSheet(saveAndOpen(t, f), "Sheet1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Region", "Revenue"}, sheet.Columns)
	assert.Empty(t, sheet.Rows)
}

func TestReadSheetBoolsAndDates(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Active")
	f.SetCellValue(sheetName, "B1", "Date")
	f.SetCellValue(sheetName, "A2", true)
	f.SetCellValue(sheetName, "B2", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

	sheet, err := ReadSheet(saveAndOpen(t, f), sheetName)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)

	assert.Equal(t, models.KindBool, sheet.Rows[0][0].Kind)
	assert.True(t, sheet.Rows[0][0].Bool)

	date := sheet.Rows[0][1]
	require.Equal(t, models.KindDateTime, date.Kind)
	assert.Equal(t, 2025, date.Time.Year())
	assert.Equal(t, time.March, date.Time.Month())
	assert.Equal(t, 15, date.Time.Day())
}

func TestReadSheetMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	_, err := ReadSheet(saveAndOpen(t, f), "Nope")
	assert.Error(t, err)
}

func TestColumnNames(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected []string
	}{
		{"plain", []string{"a", "b"}, []string{"a", "b"}},
		{"blank", []string{"a", "", "c"}, []string{"a", "Unnamed: 1", "c"}},
		{"duplicates", []string{"x", "x", "x"}, []string{"x", "x.1", "x.2"}},
		{"suffix collision", []string{"x", "x.1", "x"}, []string{"x", "x.1", "x.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColumnNames(tt.header))
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw       string
		formatted string
		kind      models.Kind
	}{
		{"123", "123", models.KindInt},
		{"-100", "-100", models.KindInt},
		{"123.45", "123.45", models.KindFloat},
		{"1234.5", "1,234.50", models.KindFloat},
		{"hello", "hello", models.KindText},
		{" ", " ", models.KindText},
		{"", "", models.KindMissing},
		{"NA", "NA", models.KindMissing},
		{"#N/A", "#N/A", models.KindMissing},
		{"1", "TRUE", models.KindBool},
		{"0", "FALSE", models.KindBool},
		{"45731", "03-15-25", models.KindDateTime},
		{"45731.5", "3/15/25 12:00", models.KindDateTime},
		{"Inf", "Inf", models.KindText},
	}

	for _, tt := range tests {
		result := parseValue(tt.raw, tt.formatted)
		if result.Kind != tt.kind {
			t.Errorf("parseValue(%q, %q) kind = %v, expected %v", tt.raw, tt.formatted, result.Kind, tt.kind)
		}
	}
}

func TestInferColumnType(t *testing.T) {
	i := func(n int64) models.Value { return models.Value{Kind: models.KindInt, Int: n} }
	fl := func(n float64) models.Value { return models.Value{Kind: models.KindFloat, Float: n} }
	s := func(v string) models.Value { return models.Value{Kind: models.KindText, Text: v} }
	b := models.Value{Kind: models.KindBool, Bool: true}
	d := models.Value{Kind: models.KindDateTime, Time: time.Now()}
	na := models.Missing()

	tests := []struct {
		name     string
		values   []models.Value
		expected models.ColumnType
	}{
		{"no rows", nil, models.TypeObject},
		{"ints", []models.Value{i(1), i(2)}, models.TypeInt},
		{"ints with gap", []models.Value{i(1), na}, models.TypeFloat},
		{"mixed numbers", []models.Value{i(1), fl(2.5)}, models.TypeFloat},
		{"all missing", []models.Value{na, na}, models.TypeFloat},
		{"text", []models.Value{s("a"), na}, models.TypeObject},
		{"text and numbers", []models.Value{s("a"), i(1)}, models.TypeObject},
		{"bools", []models.Value{b, b}, models.TypeBool},
		{"bools with gap", []models.Value{b, na}, models.TypeObject},
		{"dates with gap", []models.Value{d, na}, models.TypeDateTime},
		{"dates and numbers", []models.Value{d, i(1)}, models.TypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferColumnType(tt.values))
		})
	}
}
