// Package report renders inspection results as human-readable text.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
)

// FormatCell renders a cell the way it shows in a column of type t.
func FormatCell(v models.Value, t models.ColumnType) string {
	if v.IsMissing() {
		if t == models.TypeDateTime {
			return "NaT"
		}
		return "NaN"
	}
	if t == models.TypeFloat && v.IsNumber() {
		return formatFloat(v.Number())
	}
	return escapeLayout(formatValue(v))
}

// layoutEscaper keeps line breaks and tabs in text from splitting a grid row.
var layoutEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

func escapeLayout(s string) string {
	return layoutEscaper.Replace(s)
}

// FormatStat renders a describe statistic with six decimals.
func FormatStat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// ListRepr renders values as a bracketed, comma-separated list with
// quoted strings, e.g. ['East', 'West'].
func ListRepr(values []models.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = valueRepr(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StringListRepr is ListRepr for plain strings.
func StringListRepr(items []string) string {
	parts := make([]string, len(items))
	for i, s := range items {
		parts[i] = quote(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValue(v models.Value) string {
	switch v.Kind {
	case models.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case models.KindFloat:
		return formatFloat(v.Float)
	case models.KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case models.KindDateTime:
		return formatTime(v.Time)
	case models.KindText:
		return v.Text
	default:
		return "NaN"
	}
}

func valueRepr(v models.Value) string {
	switch v.Kind {
	case models.KindMissing:
		return "nan"
	case models.KindText:
		return quote(v.Text)
	case models.KindDateTime:
		return "Timestamp(" + quote(v.Time.Format("2006-01-02 15:04:05")) + ")"
	default:
		return formatValue(v)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEN") {
		s += ".0"
	}
	return s
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

// quote renders s as a quoted literal. It uses single quotes unless s
// holds a single quote and no double quote. Backslashes, the active quote
// and control characters are escaped.
func quote(s string) string {
	q := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
