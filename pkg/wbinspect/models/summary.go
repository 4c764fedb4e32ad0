package models

// ColumnType is a dtype label such as "int64" or "object".
type ColumnType string

const (
	TypeInt      ColumnType = "int64"
	TypeFloat    ColumnType = "float64"
	TypeBool     ColumnType = "bool"
	TypeDateTime ColumnType = "datetime64[ns]"
	TypeObject   ColumnType = "object"
)

// IsNumeric reports whether describe statistics apply to the type.
func (t ColumnType) IsNumeric() bool { return t == TypeInt || t == TypeFloat }

// IsCategorical reports whether the column holds text-like labels.
func (t ColumnType) IsCategorical() bool { return t == TypeObject }

// NumericSummary holds describe statistics over non-missing values.
// Undefined statistics are NaN.
type NumericSummary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// CategoricalSummary describes the distinct values of an object column.
type CategoricalSummary struct {
	// Unique is the number of distinct non-missing values.
	Unique int
	// Values are the distinct values in first-occurrence order. A missing
	// value is listed once, at its first position, but not counted in Unique.
	Values []Value
}

// ColumnSummary is the derived per-column summary.
type ColumnSummary struct {
	Name    string
	Type    ColumnType
	Missing int
	// Numeric is set for numeric columns only.
	Numeric *NumericSummary
	// Categorical is set for object columns only.
	Categorical *CategoricalSummary
}

// SheetSummary is a loaded sheet together with its column summaries.
type SheetSummary struct {
	Sheet   *Sheet
	Columns []ColumnSummary
}

// NumericColumns returns summaries of numeric columns in sheet order.
func (s *SheetSummary) NumericColumns() []ColumnSummary {
	var out []ColumnSummary
	for _, c := range s.Columns {
		if c.Numeric != nil {
			out = append(out, c)
		}
	}
	return out
}

// CategoricalColumns returns summaries of object columns in sheet order.
func (s *SheetSummary) CategoricalColumns() []ColumnSummary {
	var out []ColumnSummary
	for _, c := range s.Columns {
		if c.Categorical != nil {
			out = append(out, c)
		}
	}
	return out
}

// TotalMissing returns the number of missing cells across all columns.
func (s *SheetSummary) TotalMissing() int {
	total := 0
	for _, c := range s.Columns {
		total += c.Missing
	}
	return total
}
