package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/crimson-sun/detlog/internal/input"
	"github.com/crimson-sun/detlog/internal/model"
	"github.com/crimson-sun/detlog/internal/output"
)

// Analyzer reduces a log stream to a report.
type Analyzer interface {
	Analyze(ctx context.Context, r io.Reader) (model.Report, error)
}

// Opener opens a log source by path.
type Opener func(path string) (io.ReadCloser, error)

// Pipeline connects a log source, an analyzer, and an output.
type Pipeline struct {
	open     Opener
	analyzer Analyzer
	output   output.Output
}

// New creates a Pipeline reading logs through input.Open.
func New(a Analyzer, out output.Output) *Pipeline {
	return &Pipeline{
		open:     input.Open,
		analyzer: a,
		output:   out,
	}
}

// WithOpener replaces the log opener.
func (p *Pipeline) WithOpener(open Opener) *Pipeline {
	p.open = open
	return p
}

// Run analyzes the log at path and writes the report. Only failures to
// open, read, or write are returned; an empty report is a success.
func (p *Pipeline) Run(ctx context.Context, path string) (model.Report, error) {
	rc, err := p.open(path)
	if err != nil {
		return model.Report{}, err
	}
	defer rc.Close()

	report, err := p.analyzer.Analyze(ctx, rc)
	if err != nil {
		return model.Report{}, fmt.Errorf("pipeline analyze %s: %w", path, err)
	}

	d := report.Diagnostics
	slog.Debug("scan complete",
		"path", path,
		"lines", d.Lines,
		"segments", d.Segments,
		"matched", d.Matched,
		"rejected_prefix", d.RejectedPrefix,
		"rejected_max_count", d.RejectedMaxCount,
		"admitted", d.Admitted,
		"sources", len(report.Summaries),
	)

	if err := p.output.Write(ctx, report); err != nil {
		return report, fmt.Errorf("pipeline output: %w", err)
	}
	return report, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
