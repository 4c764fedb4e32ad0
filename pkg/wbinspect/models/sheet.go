package models

// Sheet is a single worksheet loaded as a table.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Range is the data region in A1 notation, empty for a blank sheet.
	Range string
	// Columns holds column names in sheet order.
	Columns []string
	// Rows holds data rows in original order. Every row has len(Columns) values.
	Rows [][]Value
}

// NumRows returns the number of data rows (header excluded).
func (s *Sheet) NumRows() int { return len(s.Rows) }

// NumCols returns the number of columns.
func (s *Sheet) NumCols() int { return len(s.Columns) }

// Column returns the values of column idx in row order.
func (s *Sheet) Column(idx int) []Value {
	out := make([]Value, len(s.Rows))
	for i, row := range s.Rows {
		out[i] = row[idx]
	}
	return out
}

// Head returns at most n leading rows.
func (s *Sheet) Head(n int) [][]Value {
	if n < 0 {
		n = 0
	}
	if n > len(s.Rows) {
		n = len(s.Rows)
	}
	return s.Rows[:n]
}
