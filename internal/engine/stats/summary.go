package stats

import (
	"fmt"
	"slices"

	mstats "github.com/montanaflynn/stats"

	"github.com/crimson-sun/detlog/internal/model"
)

// Summarize computes the statistics of one source's detection counts.
// Frames with at least threshold detections count as high. values must be
// non-empty and is not modified.
func Summarize(source string, values []int64, threshold int64) (model.SourceStatistics, error) {
	if len(values) == 0 {
		return model.SourceStatistics{}, fmt.Errorf("stats: source %q has no frames", source)
	}

	data := make(mstats.Float64Data, len(values))
	var zero, high int
	for i, v := range values {
		data[i] = float64(v)
		if v == 0 {
			zero++
		}
		if v >= threshold {
			high++
		}
	}

	mean, err := mstats.Mean(data)
	if err != nil {
		return model.SourceStatistics{}, fmt.Errorf("stats: mean of %q: %w", source, err)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	total := len(values)
	return model.SourceStatistics{
		Source:     source,
		FrameCount: total,
		Mean:       mean,
		Median:     percentileSorted(sorted, 0.5),
		P95:        percentileSorted(sorted, 0.95),
		ZeroCount:  zero,
		ZeroRate:   float64(zero) / float64(total) * 100,
		HighCount:  high,
		HighRate:   float64(high) / float64(total) * 100,
		Min:        sorted[0],
		Max:        sorted[total-1],
	}, nil
}
