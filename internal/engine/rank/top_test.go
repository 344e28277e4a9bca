package rank

import (
	"slices"
	"testing"

	"github.com/crimson-sun/detlog/internal/model"
)

func r(source string, req, det int64) model.DetectionRecord {
	return model.DetectionRecord{Source: source, RequestID: req, Detections: det}
}

func TestTopOrdersDescending(t *testing.T) {
	in := []model.DetectionRecord{r("a", 1, 3), r("b", 2, 9), r("a", 3, 5), r("c", 4, 1)}
	got := Top(in, 3)
	want := []model.DetectionRecord{r("b", 2, 9), r("a", 3, 5), r("a", 1, 3)}
	if !slices.Equal(got, want) {
		t.Errorf("Top = %+v, want %+v", got, want)
	}
}

func TestTopStableOnTies(t *testing.T) {
	in := []model.DetectionRecord{r("a", 1, 7), r("b", 2, 7), r("c", 3, 9), r("d", 4, 7)}
	got := Top(in, 10)
	want := []model.DetectionRecord{r("c", 3, 9), r("a", 1, 7), r("b", 2, 7), r("d", 4, 7)}
	if !slices.Equal(got, want) {
		t.Errorf("Top = %+v, want %+v", got, want)
	}
}

func TestTopFewerThanN(t *testing.T) {
	in := []model.DetectionRecord{r("a", 1, 1), r("a", 2, 2)}
	if got := Top(in, 10); len(got) != 2 {
		t.Errorf("len(Top) = %d, want 2", len(got))
	}
}

func TestTopDisabled(t *testing.T) {
	in := []model.DetectionRecord{r("a", 1, 1)}
	for _, n := range []int{0, -1} {
		if got := Top(in, n); got != nil {
			t.Errorf("Top(n=%d) = %+v, want nil", n, got)
		}
	}
	if got := Top(nil, 5); got != nil {
		t.Errorf("Top(nil) = %+v, want nil", got)
	}
}

func TestTopDoesNotMutateInput(t *testing.T) {
	in := []model.DetectionRecord{r("a", 1, 1), r("b", 2, 5)}
	orig := slices.Clone(in)
	Top(in, 1)
	if !slices.Equal(in, orig) {
		t.Errorf("input mutated: %+v", in)
	}
}
