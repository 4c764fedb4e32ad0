package stats

import (
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/parser"
)

// CountMissing returns the number of missing cells.
func CountMissing(values []models.Value) int {
	n := 0
	for _, v := range values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Distinct returns the distinct non-missing values in first-occurrence order.
func Distinct(values []models.Value) []models.Value {
	seen := make(map[string]struct{})
	var out []models.Value
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		key := v.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueValues returns the distinct values in first-occurrence order.
// Unlike Distinct, a missing value is kept at the position it first appears.
func UniqueValues(values []models.Value) []models.Value {
	seen := make(map[string]struct{})
	var out []models.Value
	for _, v := range values {
		key := v.Key()
		if v.IsMissing() {
			key = "missing"
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SummarizeColumn builds the summary of a single column.
func SummarizeColumn(name string, values []models.Value) models.ColumnSummary {
	colType := parser.InferColumnType(values)
	summary := models.ColumnSummary{
		Name:    name,
		Type:    colType,
		Missing: CountMissing(values),
	}

	switch {
	case colType.IsNumeric():
		desc := Describe(Numbers(values))
		summary.Numeric = &desc
	case colType.IsCategorical():
		summary.Categorical = &models.CategoricalSummary{
			Unique: len(Distinct(values)),
			Values: UniqueValues(values),
		}
	}

	return summary
}

// SummarizeSheet summarizes every column of a sheet in order.
func SummarizeSheet(sheet *models.Sheet) *models.SheetSummary {
	out := &models.SheetSummary{
		Sheet:   sheet,
		Columns: make([]models.ColumnSummary, 0, sheet.NumCols()),
	}
	for idx, name := range sheet.Columns {
		out.Columns = append(out.Columns, SummarizeColumn(name, sheet.Column(idx)))
	}
	return out
}
