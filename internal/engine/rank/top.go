// Package rank selects the frames with the most detections across all sources.
package rank

import (
	"cmp"
	"slices"

	"github.com/crimson-sun/detlog/internal/model"
)

// Top returns up to n records ordered by detections, highest first. Records
// with equal counts keep their encounter order. records is not modified.
// A non-positive n yields nil.
func Top(records []model.DetectionRecord, n int) []model.DetectionRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, func(a, b model.DetectionRecord) int {
		return cmp.Compare(b.Detections, a.Detections)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
