package detlog

import "github.com/crimson-sun/detlog/internal/model"

// Frame is one ranked analysis result.
type Frame struct {
	Source     string
	Request    int64
	Detections int64
}

// SourceSummary describes the detection count distribution of one source.
type SourceSummary struct {
	Source   string
	Frames   int
	Mean     float64
	Median   float64
	P95      float64
	Zero     int
	ZeroRate float64 // percentage
	High     int     // frames at or above the threshold
	HighRate float64 // percentage
	Min      int64
	Max      int64
}

// Report is the outcome of one analysis.
type Report struct {
	Threshold int
	Sources   []SourceSummary // sorted by source name
	Top       []Frame         // highest detection counts first

	report model.Report
}

// Empty reports whether no record was found.
func (r Report) Empty() bool {
	return len(r.Sources) == 0
}

func reportFromModel(m model.Report) Report {
	r := Report{Threshold: m.Threshold, report: m}
	for _, s := range m.Summaries {
		r.Sources = append(r.Sources, SourceSummary{
			Source:   s.Source,
			Frames:   s.FrameCount,
			Mean:     s.Mean,
			Median:   s.Median,
			P95:      s.P95,
			Zero:     s.ZeroCount,
			ZeroRate: s.ZeroRate,
			High:     s.HighCount,
			HighRate: s.HighRate,
			Min:      s.Min,
			Max:      s.Max,
		})
	}
	for _, rec := range m.Outliers {
		r.Top = append(r.Top, Frame{
			Source:     rec.Source,
			Request:    rec.RequestID,
			Detections: rec.Detections,
		})
	}
	return r
}
