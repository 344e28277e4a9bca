// Package aggregate groups admitted records by source during a single pass.
package aggregate

import (
	"iter"
	"slices"

	"github.com/crimson-sun/detlog/internal/model"
)

// Dataset holds per-source detection counts and the flat record list of one run.
// Both structures are append-only.
type Dataset struct {
	groups  map[string][]int64
	records []model.DetectionRecord
}

// New returns an empty Dataset.
func New() *Dataset {
	return &Dataset{groups: make(map[string][]int64)}
}

// Add appends rec to its source group and to the flat record list.
func (d *Dataset) Add(rec model.DetectionRecord) {
	d.groups[rec.Source] = append(d.groups[rec.Source], rec.Detections)
	d.records = append(d.records, rec)
}

// Consume drains seq into the dataset.
func (d *Dataset) Consume(seq iter.Seq[model.DetectionRecord]) {
	for rec := range seq {
		d.Add(rec)
	}
}

// Counts returns the detection counts of source in arrival order, or nil
// if the source was never seen.
func (d *Dataset) Counts(source string) []int64 {
	return d.groups[source]
}

// Sources returns every source with at least one record, in ascending lexical order.
func (d *Dataset) Sources() []string {
	sources := make([]string, 0, len(d.groups))
	for s := range d.groups {
		sources = append(sources, s)
	}
	slices.Sort(sources)
	return sources
}

// Records returns all admitted records in encounter order.
func (d *Dataset) Records() []model.DetectionRecord {
	return d.records
}

// Len returns the number of admitted records.
func (d *Dataset) Len() int {
	return len(d.records)
}
