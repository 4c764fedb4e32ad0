package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
	"github.com/xuri/excelize/v2"
)

// naValues are cell texts read as missing.
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// dateLike matches the formatted text excelize produces for date and time number formats.
var dateLike = regexp.MustCompile(`^(\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}|\d{1,2}-[A-Za-z]{3}(-\d{2,4})?|[A-Za-z]{3}-\d{2,4}|\d{1,2}:\d{2})`)

// ReadSheet loads a sheet as a table. The first non-empty row of the data
// region is the header; every following row up to the last non-empty row
// is a data row. Columns always start at A, so leading blank columns load
// as unnamed all-missing columns.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read raw rows: %w", err)
	}
	formatted, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read formatted rows: %w", err)
	}

	sheet := &models.Sheet{Name: sheetName}
	region, ok := FindDataRegion(raw)
	if !ok {
		return sheet, nil
	}
	region.MinCol = 0

	header := make([]string, 0, region.Width())
	for col := region.MinCol; col <= region.MaxCol; col++ {
		header = append(header, cellAt(raw, region.MinRow, col))
	}
	sheet.Columns = ColumnNames(header)
	sheet.Range = region.Range()

	for rowIdx := region.MinRow + 1; rowIdx <= region.MaxRow; rowIdx++ {
		row := make([]models.Value, 0, region.Width())
		for col := region.MinCol; col <= region.MaxCol; col++ {
			row = append(row, parseValue(cellAt(raw, rowIdx, col), cellAt(formatted, rowIdx, col)))
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// ColumnNames turns header cells into unique column names.
// Blank headers become "Unnamed: <i>" and repeats get a ".<n>" suffix.
func ColumnNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := h
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

func cellAt(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) {
		return ""
	}
	row := rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

// parseValue infers a cell value from its raw text and its formatted text.
// Integers are tried first, then floats; numbers shown with a date format
// become datetimes, TRUE/FALSE cells become bools, and the rest is text.
func parseValue(raw, formatted string) models.Value {
	if _, na := naValues[raw]; na {
		return models.Missing()
	}
	if (formatted == "TRUE" || formatted == "FALSE") && (raw == "1" || raw == "0") {
		return models.Value{Kind: models.KindBool, Bool: raw == "1", Text: formatted}
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if isDateFormatted(raw, formatted) {
			if v, ok := dateValue(float64(i), formatted); ok {
				return v
			}
		}
		return models.Value{Kind: models.KindInt, Int: i, Text: raw}
	}
	if fl, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(fl, 0) && !math.IsNaN(fl) {
		if isDateFormatted(raw, formatted) {
			if v, ok := dateValue(fl, formatted); ok {
				return v
			}
		}
		return models.Value{Kind: models.KindFloat, Float: fl, Text: raw}
	}
	return models.Value{Kind: models.KindText, Text: raw}
}

func isDateFormatted(raw, formatted string) bool {
	return formatted != "" && formatted != raw && dateLike.MatchString(formatted)
}

func dateValue(serial float64, formatted string) (models.Value, bool) {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return models.Value{}, false
	}
	return models.Value{Kind: models.KindDateTime, Time: t, Text: formatted}, true
}
