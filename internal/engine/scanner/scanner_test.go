package scanner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/crimson-sun/detlog/internal/engine/filter"
	"github.com/crimson-sun/detlog/internal/model"
)

func collect(t *testing.T, s *Scanner) []model.DetectionRecord {
	t.Helper()
	var out []model.DetectionRecord
	for rec := range s.Records(context.Background()) {
		out = append(out, rec)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	return out
}

func TestRecordsInEncounterOrder(t *testing.T) {
	input := strings.Join([]string{
		"Analysis complete - source: b, request: 1, detections: 4",
		"noise",
		"Analysis complete - source: a, request: 2, detections: 5",
		"Analysis complete - source: b, request: 3, detections: 6",
	}, "\n")

	got := collect(t, New(strings.NewReader(input), filter.Policy{MaxCount: filter.NoMaxCount}))
	want := []model.DetectionRecord{
		{Source: "b", RequestID: 1, Detections: 4},
		{Source: "a", RequestID: 2, Detections: 5},
		{Source: "b", RequestID: 3, Detections: 6},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCarriageReturnSegments(t *testing.T) {
	input := "Analysis complete - source: a, request: 1, detections: 1\rAnalysis complete - source: a, request: 2, detections: 2\r\n" +
		"Analysis complete - source: a, request: 3, detections: 3\r\n"

	s := New(strings.NewReader(input), filter.Policy{MaxCount: filter.NoMaxCount})
	got := collect(t, s)
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3: %+v", len(got), got)
	}
	for i, rec := range got {
		if rec.RequestID != int64(i+1) {
			t.Errorf("record[%d].RequestID = %d, want %d", i, rec.RequestID, i+1)
		}
	}
	if c := s.Counts(); c.Lines != 2 || c.Segments != 3 {
		t.Errorf("counts = %+v, want Lines=2 Segments=3", c)
	}
}

func TestCountsTrackRejections(t *testing.T) {
	input := strings.Join([]string{
		"Analysis complete - source: cam_1, request: 1, detections: 4",
		"Analysis complete - source: other, request: 2, detections: 5",
		"Analysis complete - source: cam_2, request: 3, detections: 500",
		"garbage",
		"Analysis complete - source: cam_3, request: 4, detections: 200",
	}, "\n")

	s := New(strings.NewReader(input), filter.Policy{SourcePrefix: "cam_", MaxCount: 200})
	got := collect(t, s)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	want := model.ScanCounts{
		Lines:            5,
		Segments:         5,
		Matched:          4,
		RejectedPrefix:   1,
		RejectedMaxCount: 1,
		Admitted:         2,
	}
	if c := s.Counts(); c != want {
		t.Errorf("counts = %+v, want %+v", c, want)
	}
}

func TestEmptyInput(t *testing.T) {
	s := New(strings.NewReader(""), filter.Policy{MaxCount: filter.NoMaxCount})
	if got := collect(t, s); len(got) != 0 {
		t.Fatalf("got %d records from empty input", len(got))
	}
	if c := s.Counts(); c.Lines != 0 {
		t.Errorf("Lines = %d, want 0", c.Lines)
	}
}

func TestNotRestartable(t *testing.T) {
	s := New(strings.NewReader("Analysis complete - source: a, request: 1, detections: 1\n"), filter.Policy{MaxCount: filter.NoMaxCount})
	if got := collect(t, s); len(got) != 1 {
		t.Fatalf("first pass: got %d records, want 1", len(got))
	}
	if got := collect(t, s); len(got) != 0 {
		t.Fatalf("second pass: got %d records, want 0", len(got))
	}
}

func TestEarlyBreak(t *testing.T) {
	input := strings.Repeat("Analysis complete - source: a, request: 1, detections: 1\n", 10)
	s := New(strings.NewReader(input), filter.Policy{MaxCount: filter.NoMaxCount})
	n := 0
	for range s.Records(context.Background()) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("consumed %d records, want 3", n)
	}
	if s.Err() != nil {
		t.Fatalf("unexpected error: %v", s.Err())
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(strings.NewReader("Analysis complete - source: a, request: 1, detections: 1\n"), filter.Policy{MaxCount: filter.NoMaxCount})
	for range s.Records(ctx) {
		t.Fatal("expected no records after cancellation")
	}
	if !errors.Is(s.Err(), context.Canceled) {
		t.Fatalf("Err() = %v, want context.Canceled", s.Err())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadErrorSurfaced(t *testing.T) {
	s := New(failingReader{}, filter.Policy{MaxCount: filter.NoMaxCount})
	for range s.Records(context.Background()) {
	}
	if s.Err() == nil || !strings.Contains(s.Err().Error(), "disk on fire") {
		t.Fatalf("Err() = %v, want wrapped read error", s.Err())
	}
}
