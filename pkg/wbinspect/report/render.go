package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
)

const (
	bookRule  = 50
	sheetRule = 30
)

// Options controls section sizes.
type Options struct {
	// HeadRows is the number of leading rows shown per sheet.
	HeadRows int
	// MaxListedValues is the largest distinct count whose values are listed.
	MaxListedValues int
}

// WriteHeader writes the workbook banner and sheet list.
func WriteHeader(w io.Writer, wb *models.Workbook) {
	fmt.Fprintln(w, "📊 SALES DATA ANALYSIS")
	fmt.Fprintf(w, "File: %s\n", wb.BookName)
	fmt.Fprintln(w, strings.Repeat("=", bookRule))
	fmt.Fprintf(w, "📋 Sheets: %s\n", StringListRepr(wb.SheetNames))
}

// WriteSheetTitle writes the heading that opens a sheet block.
func WriteSheetTitle(w io.Writer, name string) {
	fmt.Fprintf(w, "\n🔍 SHEET: %s\n", name)
	fmt.Fprintln(w, strings.Repeat("-", sheetRule))
}

// WriteSheet writes every section of a summarized sheet.
func WriteSheet(w io.Writer, s *models.SheetSummary, opts Options) {
	sheet := s.Sheet
	fmt.Fprintf(w, "Dimensions: %d rows × %d columns\n", sheet.NumRows(), sheet.NumCols())
	fmt.Fprintf(w, "Columns: %s\n", StringListRepr(sheet.Columns))

	fmt.Fprintf(w, "\nFirst %d rows:\n", opts.HeadRows)
	writeHead(w, s, opts.HeadRows)

	fmt.Fprintln(w, "\nData Types:")
	for _, c := range s.Columns {
		fmt.Fprintf(w, "  %s: %s\n", c.Name, c.Type)
	}

	if numeric := s.NumericColumns(); len(numeric) > 0 {
		fmt.Fprintln(w, "\nNumeric Summary:")
		writeDescribe(w, numeric)
	}

	if s.TotalMissing() > 0 {
		fmt.Fprintln(w, "\nMissing Values:")
		for _, c := range s.Columns {
			if c.Missing > 0 {
				fmt.Fprintf(w, "  %s: %d\n", c.Name, c.Missing)
			}
		}
	}

	fmt.Fprintln(w, "\nCategorical Data:")
	for _, c := range s.CategoricalColumns() {
		fmt.Fprintf(w, "  %s: %d unique values\n", c.Name, c.Categorical.Unique)
		if c.Categorical.Unique <= opts.MaxListedValues {
			fmt.Fprintf(w, "    Values: %s\n", ListRepr(c.Categorical.Values))
		}
	}
}

// WriteQuestions writes the suggested-questions banner followed by lines.
func WriteQuestions(w io.Writer, lines []string) {
	fmt.Fprintln(w, "\n🎯 POTENTIAL ANALYTICS QUESTIONS:")
	fmt.Fprintln(w, strings.Repeat("=", bookRule))
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// WriteError writes the single-line failure report.
func WriteError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error analyzing file: %v\n", err)
}

// writeHead prints an index column plus one right-aligned column per sheet column.
func writeHead(w io.Writer, s *models.SheetSummary, n int) {
	if len(s.Columns) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, c := range s.Columns {
		fmt.Fprintf(tw, "%s\t", escapeLayout(c.Name))
	}
	fmt.Fprintln(tw)
	for i, row := range s.Sheet.Head(n) {
		fmt.Fprintf(tw, "%d\t", i)
		for j, v := range row {
			fmt.Fprintf(tw, "%s\t", FormatCell(v, s.Columns[j].Type))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// writeDescribe prints the describe table, one column per numeric column.
func writeDescribe(w io.Writer, cols []models.ColumnSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, c := range cols {
		fmt.Fprintf(tw, "%s\t", escapeLayout(c.Name))
	}
	fmt.Fprintln(tw)

	rows := []struct {
		label string
		pick  func(*models.NumericSummary) float64
	}{
		{"count", func(n *models.NumericSummary) float64 { return float64(n.Count) }},
		{"mean", func(n *models.NumericSummary) float64 { return n.Mean }},
		{"std", func(n *models.NumericSummary) float64 { return n.Std }},
		{"min", func(n *models.NumericSummary) float64 { return n.Min }},
		{"25%", func(n *models.NumericSummary) float64 { return n.Q25 }},
		{"50%", func(n *models.NumericSummary) float64 { return n.Q50 }},
		{"75%", func(n *models.NumericSummary) float64 { return n.Q75 }},
		{"max", func(n *models.NumericSummary) float64 { return n.Max }},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t", r.label)
		for _, c := range cols {
			fmt.Fprintf(tw, "%s\t", FormatStat(r.pick(c.Numeric)))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
