package model

// SourceStatistics is the distribution summary of one source's detection counts.
type SourceStatistics struct {
	Source     string  `json:"source"`
	FrameCount int     `json:"frame_count"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	P95        float64 `json:"p95"`
	ZeroCount  int     `json:"zero_count"`
	ZeroRate   float64 `json:"zero_rate"` // percentage, 0-100
	HighCount  int     `json:"high_count"`
	HighRate   float64 `json:"high_rate"` // percentage, 0-100
	Min        int64   `json:"min"`
	Max        int64   `json:"max"`
}

// ScanCounts tallies what happened to the input during one scan.
// None of these counters affect the text report.
type ScanCounts struct {
	Lines            int `json:"lines"`
	Segments         int `json:"segments"`
	Matched          int `json:"matched"`
	RejectedPrefix   int `json:"rejected_prefix"`
	RejectedMaxCount int `json:"rejected_max_count"`
	Admitted         int `json:"admitted"`
}

// Report is the complete result of one analysis run.
type Report struct {
	Threshold   int                `json:"threshold"`
	Top         int                `json:"top"`
	Summaries   []SourceStatistics `json:"summaries"`
	Outliers    []DetectionRecord  `json:"outliers"`
	Diagnostics ScanCounts         `json:"diagnostics"`
}

// Empty reports whether no record was admitted.
func (r Report) Empty() bool {
	return len(r.Summaries) == 0
}
