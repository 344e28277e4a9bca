package detlog

import (
	"context"
	"fmt"
	"io"

	"github.com/crimson-sun/detlog/internal/engine"
	"github.com/crimson-sun/detlog/internal/engine/filter"
	"github.com/crimson-sun/detlog/internal/input"
	"github.com/crimson-sun/detlog/internal/output/text"
)

// Analyze reads r to the end and summarizes its detection records.
// Invalid UTF-8 in r is dropped.
func Analyze(ctx context.Context, r io.Reader, opts ...Option) (Report, error) {
	return analyze(ctx, input.Decode(r, nil), opts)
}

// AnalyzeFile summarizes the log at path ("-" reads stdin). A missing file
// yields an error satisfying errors.Is(err, fs.ErrNotExist).
func AnalyzeFile(path string, opts ...Option) (Report, error) {
	rc, err := input.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("detlog: %w", err)
	}
	defer rc.Close()
	return analyze(context.Background(), rc, opts)
}

func analyze(ctx context.Context, r io.Reader, opts []Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	eng := engine.New(filter.Policy{
		SourcePrefix: o.sourcePrefix,
		MaxCount:     o.maxCount,
	}, o.threshold, o.top)

	m, err := eng.Analyze(ctx, r)
	if err != nil {
		return Report{}, fmt.Errorf("detlog: %w", err)
	}
	return reportFromModel(m), nil
}

// Text renders the report in the operator-facing text layout.
func (r Report) Text() string {
	return text.Render(r.report)
}
