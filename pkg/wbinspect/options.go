// Package wbinspect prints a descriptive summary of every sheet in a workbook.
package wbinspect

import (
	"fmt"
	"log/slog"
)

// SuggestMode selects how the closing question catalog is produced.
type SuggestMode string

const (
	// SuggestStatic prints the fixed catalog, identical on every run.
	SuggestStatic SuggestMode = "static"
	// SuggestData derives questions from detected column roles.
	SuggestData SuggestMode = "data"
	// SuggestNone skips the catalog.
	SuggestNone SuggestMode = "none"
)

// ParseSuggestMode validates a mode name.
func ParseSuggestMode(s string) (SuggestMode, error) {
	switch m := SuggestMode(s); m {
	case SuggestStatic, SuggestData, SuggestNone:
		return m, nil
	default:
		return "", fmt.Errorf("invalid suggest mode: %s (must be static, data, or none)", s)
	}
}

// Options configures inspection behavior.
type Options struct {
	// HeadRows is the number of leading rows shown per sheet.
	HeadRows int
	// MaxListedValues is the largest distinct count for which a categorical
	// column's values are listed.
	MaxListedValues int
	// Suggestions selects the question catalog.
	Suggestions SuggestMode
	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		HeadRows:        5,
		MaxListedValues: 10,
		Suggestions:     SuggestStatic,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.HeadRows <= 0 {
		o.HeadRows = d.HeadRows
	}
	if o.MaxListedValues < 0 {
		o.MaxListedValues = d.MaxListedValues
	}
	if o.Suggestions == "" {
		o.Suggestions = d.Suggestions
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
