// Package jsonout renders reports as a single JSON document.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/crimson-sun/detlog/internal/model"
	"github.com/crimson-sun/detlog/internal/output"
)

func init() {
	output.Register("json", NewOutput)
}

// Output writes JSON-encoded reports.
type Output struct {
	enc *json.Encoder
}

// New creates a JSON Output writing indented documents to w.
func New(w io.Writer) *Output {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return &Output{enc: enc}
}

// NewOutput satisfies output.Constructor.
func NewOutput(w io.Writer) output.Output {
	return New(w)
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	// Keep empty lists as [] so consumers need not special-case null.
	if report.Summaries == nil {
		report.Summaries = []model.SourceStatistics{}
	}
	if report.Outliers == nil {
		report.Outliers = []model.DetectionRecord{}
	}
	if err := o.enc.Encode(report); err != nil {
		return fmt.Errorf("json output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
