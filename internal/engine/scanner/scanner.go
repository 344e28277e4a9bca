// Package scanner turns a log stream into a lazy sequence of admitted records.
package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/crimson-sun/detlog/internal/engine/filter"
	"github.com/crimson-sun/detlog/internal/engine/matcher"
	"github.com/crimson-sun/detlog/internal/model"
)

// Scanner reads a log top to bottom exactly once. Records are delivered
// in encounter order; the sequence returned by Records is not restartable.
type Scanner struct {
	r      *bufio.Reader
	policy filter.Policy
	counts model.ScanCounts
	err    error
	used   bool
}

// New creates a Scanner over r that admits records according to policy.
func New(r io.Reader, policy filter.Policy) *Scanner {
	return &Scanner{r: bufio.NewReader(r), policy: policy}
}

// Records yields every admitted record. Iteration stops early when ctx is
// cancelled or reading fails; check Err afterwards.
func (s *Scanner) Records(ctx context.Context) iter.Seq[model.DetectionRecord] {
	return func(yield func(model.DetectionRecord) bool) {
		if s.used {
			return
		}
		s.used = true

		for {
			if err := ctx.Err(); err != nil {
				s.err = err
				return
			}

			line, err := s.r.ReadString('\n')
			if len(line) > 0 {
				s.counts.Lines++
				if !s.emitLine(line, yield) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					s.err = fmt.Errorf("scanner: read: %w", err)
				}
				return
			}
		}
	}
}

// emitLine yields the admitted records of one raw line. Returns false when
// the consumer stopped iteration.
func (s *Scanner) emitLine(line string, yield func(model.DetectionRecord) bool) bool {
	for _, seg := range matcher.Segments(line) {
		s.counts.Segments++
		rec, ok := matcher.Match(seg)
		if !ok {
			continue
		}
		s.counts.Matched++

		switch s.policy.Evaluate(rec) {
		case filter.RejectPrefix:
			s.counts.RejectedPrefix++
			continue
		case filter.RejectMaxCount:
			s.counts.RejectedMaxCount++
			continue
		}

		s.counts.Admitted++
		if !yield(rec) {
			return false
		}
	}
	return true
}

// Err returns the first non-EOF error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// Counts returns the scan counters accumulated so far.
func (s *Scanner) Counts() model.ScanCounts {
	return s.counts
}
