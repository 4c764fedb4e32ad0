// Package stats computes per-column summaries for loaded sheets.
package stats

import (
	"math"
	"slices"

	mstats "github.com/montanaflynn/stats"
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
)

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max. Statistics that are undefined for the input size are NaN.
func Describe(data []float64) models.NumericSummary {
	nan := math.NaN()
	summary := models.NumericSummary{Count: len(data), Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	if len(data) == 0 {
		return summary
	}

	if mean, err := mstats.Mean(data); err == nil {
		summary.Mean = mean
	}
	if len(data) > 1 {
		if std, err := mstats.StandardDeviationSample(data); err == nil {
			summary.Std = std
		}
	}
	if minV, err := mstats.Min(data); err == nil {
		summary.Min = minV
	}
	if maxV, err := mstats.Max(data); err == nil {
		summary.Max = maxV
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	summary.Q25 = Quantile(sorted, 0.25)
	summary.Q50 = Quantile(sorted, 0.50)
	summary.Q75 = Quantile(sorted, 0.75)

	return summary
}

// Quantile returns the q-th quantile of sorted data, interpolating linearly
// between the two closest ranks. sorted must be in ascending order.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 || q < 0 || q > 1 {
		return math.NaN()
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Numbers returns the numeric payloads of non-missing values.
func Numbers(values []models.Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.IsNumber() {
			out = append(out, v.Number())
		}
	}
	return out
}
