package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/detlog/internal/model"
	"github.com/crimson-sun/detlog/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Output.
type Option func(*Output)

// WithAppend keeps existing file content and appends reports after it.
// By default the file is truncated on open.
func WithAppend() Option {
	return func(o *Output) { o.flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output renders reports into a file with buffered I/O.
type Output struct {
	mu      sync.Mutex
	path    string
	flags   int
	bufSize int
	f       *os.File
	w       *bufio.Writer
	inner   output.Output
}

// New opens path and renders reports into it with the given format constructor.
func New(path string, ctor output.Constructor, opts ...Option) (*Output, error) {
	o := &Output{
		path:    path,
		flags:   os.O_CREATE | os.O_WRONLY | os.O_TRUNC,
		bufSize: defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}

	f, err := os.OpenFile(o.path, o.flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", o.path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	o.inner = ctor(o.w)
	return o, nil
}

// Write renders the report into the buffered file.
func (o *Output) Write(ctx context.Context, report model.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.inner.Write(ctx, report); err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.inner.Close(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: %w", err)
	}
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
