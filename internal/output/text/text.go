// Package text renders reports in the operator-facing plain-text layout.
package text

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/crimson-sun/detlog/internal/model"
	"github.com/crimson-sun/detlog/internal/output"
)

func init() {
	output.Register("text", NewOutput)
}

// Output writes the plain-text report.
type Output struct {
	w io.Writer
}

// New creates a text Output writing to w.
func New(w io.Writer) *Output {
	return &Output{w: w}
}

// NewOutput satisfies output.Constructor.
func NewOutput(w io.Writer) output.Output {
	return New(w)
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	if _, err := io.WriteString(o.w, Render(report)); err != nil {
		return fmt.Errorf("text output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}

// Render returns the complete report text, newline-terminated.
func Render(report model.Report) string {
	var b strings.Builder
	if report.Empty() {
		b.WriteString(output.NoRecordsMessage)
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(output.SummaryHeader)
	b.WriteByte('\n')
	for _, s := range report.Summaries {
		b.WriteString(output.SummaryLine(s, report.Threshold))
		b.WriteByte('\n')
	}

	if report.Top > 0 && len(report.Outliers) > 0 {
		b.WriteByte('\n')
		b.WriteString(output.OutlierHeader(report.Top))
		b.WriteByte('\n')
		for _, rec := range report.Outliers {
			b.WriteString(output.RecordLine(rec))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
