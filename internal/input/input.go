// Package input opens analyzer log sources for scanning.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// NotFoundError reports a log path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "日志文件不存在: " + e.Path
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// dropInvalid removes ill-formed UTF-8 so undecodable bytes vanish instead
// of becoming replacement characters.
func dropInvalid() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError }))
}

type source struct {
	io.Reader
	closer io.Closer
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open returns a reader over the log at path, or standard input for "-".
// The returned stream is decoded leniently as UTF-8.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return Decode(os.Stdin, nil), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	return Decode(f, f), nil
}

// Decode wraps r with lenient UTF-8 decoding. closer, if non-nil, is closed
// with the returned stream.
func Decode(r io.Reader, closer io.Closer) io.ReadCloser {
	return &source{
		Reader: transform.NewReader(r, dropInvalid()),
		closer: closer,
	}
}
