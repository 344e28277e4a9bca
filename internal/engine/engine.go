package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/crimson-sun/detlog/internal/engine/aggregate"
	"github.com/crimson-sun/detlog/internal/engine/filter"
	"github.com/crimson-sun/detlog/internal/engine/rank"
	"github.com/crimson-sun/detlog/internal/engine/scanner"
	"github.com/crimson-sun/detlog/internal/engine/stats"
	"github.com/crimson-sun/detlog/internal/model"
)

// Engine orchestrates the match → filter → aggregate → summarize → rank pipeline.
type Engine struct {
	policy    filter.Policy
	threshold int64
	top       int
}

// New creates an Engine. Frames with at least threshold detections count as
// high; top bounds the outlier list (non-positive disables it).
func New(policy filter.Policy, threshold int64, top int) *Engine {
	return &Engine{
		policy:    policy,
		threshold: threshold,
		top:       top,
	}
}

// Analyze reads r once and reduces it to a report. A source without
// matching records yields an empty report, not an error.
func (e *Engine) Analyze(ctx context.Context, r io.Reader) (model.Report, error) {
	sc := scanner.New(r, e.policy)
	ds := aggregate.New()
	ds.Consume(sc.Records(ctx))
	if err := sc.Err(); err != nil {
		return model.Report{}, fmt.Errorf("engine: %w", err)
	}

	report := model.Report{
		Threshold:   int(e.threshold),
		Top:         e.top,
		Diagnostics: sc.Counts(),
	}

	sources := ds.Sources()
	report.Summaries = make([]model.SourceStatistics, 0, len(sources))
	for _, source := range sources {
		s, err := stats.Summarize(source, ds.Counts(source), e.threshold)
		if err != nil {
			return model.Report{}, fmt.Errorf("engine: %w", err)
		}
		report.Summaries = append(report.Summaries, s)
	}

	report.Outliers = rank.Top(ds.Records(), e.top)
	return report, nil
}
