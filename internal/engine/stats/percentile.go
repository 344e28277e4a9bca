// Package stats computes per-source distribution statistics.
package stats

import (
	"math"
	"slices"
)

// Percentile returns the ratio-th percentile of values using linear
// interpolation between the closest order statistics. ratio must be in [0, 1].
// An empty input yields 0. values is not modified.
func Percentile(values []int64, ratio float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return percentileSorted(sorted, ratio)
}

func percentileSorted(sorted []int64, ratio float64) float64 {
	pos := float64(len(sorted)-1) * ratio
	lower := math.Floor(pos)
	upper := math.Ceil(pos)
	if lower == upper {
		return float64(sorted[int(pos)])
	}
	base := sorted[int(lower)]
	diff := sorted[int(upper)] - base
	return float64(base) + float64(diff)*(pos-lower)
}
