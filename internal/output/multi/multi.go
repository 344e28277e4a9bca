package multi

import (
	"context"
	"errors"
	"fmt"

	"github.com/crimson-sun/detlog/internal/model"
	"github.com/crimson-sun/detlog/internal/output"
)

// Multi delivers each report to several outputs in order, for example the
// terminal and a saved copy on disk. A failing output does not stop delivery
// to the ones after it.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers the report to every wrapped output and joins their errors.
func (m *Multi) Write(ctx context.Context, report model.Report) error {
	var errs []error
	for i, o := range m.outputs {
		if err := o.Write(ctx, report); err != nil {
			errs = append(errs, fmt.Errorf("output %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for i, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, fmt.Errorf("output %d: close: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
