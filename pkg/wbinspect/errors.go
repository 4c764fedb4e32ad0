package wbinspect

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is not an xlsx-family workbook.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrParseFailure indicates a sheet could not be read.
var ErrParseFailure = errors.New("sheet parse failure")

// ErrUnreadable indicates the file exists but could not be read.
var ErrUnreadable = errors.New("file unreadable")

// Kind classifies an AnalysisError.
type Kind string

const (
	KindFileNotFound      Kind = "file-not-found"
	KindUnreadable        Kind = "unreadable"
	KindUnsupportedFormat Kind = "unsupported-format"
	KindParseFailure      Kind = "parse-failure"
)

var kindSentinels = map[Kind]error{
	KindFileNotFound:      ErrFileNotFound,
	KindUnreadable:        ErrUnreadable,
	KindUnsupportedFormat: ErrUnsupportedFormat,
	KindParseFailure:      ErrParseFailure,
}

// AnalysisError represents a failure while inspecting a workbook.
type AnalysisError struct {
	Kind      Kind
	Path      string
	SheetName string // empty for workbook-level failures
	Err       error
}

func (e *AnalysisError) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("%s: sheet %q: %v", e.Kind, e.SheetName, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *AnalysisError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(kind Kind, path, sheetName string, err error) *AnalysisError {
	return &AnalysisError{
		Kind:      kind,
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}

// KindOf returns the kind of err, or "" when err is not an AnalysisError.
func KindOf(err error) Kind {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
