package wbinspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/parser"
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/report"
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/stats"
	"github.com/xuri/excelize/v2"
)

// supportedExtensions are the OOXML spreadsheet containers excelize reads.
var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Analyze prints the workbook summary to w. Any failure is printed as a
// single error line; output already written for earlier sheets is kept.
func Analyze(w io.Writer, path string, opts Options) {
	if err := Inspect(w, path, opts); err != nil {
		report.WriteError(w, err)
	}
}

// Inspect prints the workbook summary to w and returns the first failure
// as an *AnalysisError.
func Inspect(w io.Writer, path string, opts Options) error {
	opts = opts.withDefaults()
	logger := opts.Logger.With("file", path)

	f, wb, err := Open(path)
	if err != nil {
		logger.Debug("open failed", "kind", KindOf(err), "error", err)
		return err
	}
	defer f.Close()

	logger.Debug("workbook opened", "sheets", len(wb.SheetNames))
	report.WriteHeader(w, wb)

	reportOpts := report.Options{
		HeadRows:        opts.HeadRows,
		MaxListedValues: opts.MaxListedValues,
	}
	summaries := make([]*models.SheetSummary, 0, len(wb.SheetNames))
	for _, name := range wb.SheetNames {
		report.WriteSheetTitle(w, name)

		sheet, err := parser.ReadSheet(f, name)
		if err != nil {
			logger.Debug("sheet read failed", "sheet", name, "error", err)
			return NewAnalysisError(KindParseFailure, path, name, err)
		}
		logger.Debug("sheet loaded",
			"sheet", name,
			"range", sheet.Range,
			"rows", sheet.NumRows(),
			"columns", sheet.NumCols(),
		)

		summary := stats.SummarizeSheet(sheet)
		report.WriteSheet(w, summary, reportOpts)
		summaries = append(summaries, summary)
	}

	switch opts.Suggestions {
	case SuggestStatic:
		report.WriteQuestions(w, report.StaticQuestions())
	case SuggestData:
		report.WriteQuestions(w, report.SuggestQuestions(summaries))
	}

	return nil
}

// Open checks path and opens it as a workbook. The caller must close the
// returned file.
func Open(path string) (*excelize.File, *models.Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, NewAnalysisError(KindFileNotFound, path, "", err)
		}
		return nil, nil, NewAnalysisError(KindUnreadable, path, "", err)
	}
	if info.IsDir() {
		return nil, nil, NewAnalysisError(KindUnreadable, path, "", fmt.Errorf("%s: is a directory", path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, nil, NewAnalysisError(KindUnsupportedFormat, path, "",
			fmt.Errorf("%s: extension %q is not an xlsx workbook", path, ext))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, nil, NewAnalysisError(KindUnreadable, path, "", err)
		}
		return nil, nil, NewAnalysisError(KindUnsupportedFormat, path, "", fmt.Errorf("%s: %w", path, err))
	}

	return f, &models.Workbook{
		BookName:   filepath.Base(path),
		SheetNames: f.GetSheetList(),
	}, nil
}
