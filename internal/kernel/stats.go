package kernel

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of data, or 0 for an empty slice,
// mirroring pkg/formulas.Mean in the trading-bot pack this kernel was
// grounded on.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// Median returns the linearly-interpolated median of data, or 0 for an
// empty slice. data is not mutated; a sorted copy is used internally.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return Percentile(data, 50)
}

// StdDev returns the sample standard deviation (divisor N-1) of data, or
// 0 when data has fewer than two elements. The sample form is used
// consistently everywhere in this kernel, per spec §4.2's "used
// consistently" clause.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Percentile returns the p-th percentile of data using linear
// interpolation between adjacent ranks: p=0 returns the minimum, p=100
// the maximum. Rejecting p outside [0, 100] is the caller's
// responsibility via PercentileChecked; Percentile itself clamps to 0 for
// empty input and panics never.
func Percentile(data []float64, p float64) float64 {
	v, err := PercentileChecked(data, p)
	if err != nil {
		return 0
	}
	return v
}

// PercentileChecked is the validating form of Percentile: it rejects p
// outside [0, 100] and reports an error instead of silently clamping.
func PercentileChecked(data []float64, p float64) (float64, error) {
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("kernel: Percentile: p must be in [0, 100], got %v", p)
	}
	if len(data) == 0 {
		return 0, nil
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= len(sorted) {
		hi = lo
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), nil
}

// Correlation returns the Pearson correlation coefficient between two
// equal-length vectors, or 0 when either has zero variance. Panics if x
// and y differ in length (a programmer error, not a runtime input
// condition).
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("kernel: Correlation: x and y must have equal length")
	}
	if len(x) < 2 {
		return 0
	}
	if StdDev(x) == 0 || StdDev(y) == 0 {
		return 0
	}
	return stat.Correlation(x, y, nil)
}
