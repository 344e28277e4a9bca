// Package detlog summarizes per-frame detection counts found in
// VideoAnalyzer logs.
//
// Quick start:
//
//	report, err := detlog.AnalyzeFile("va-output.log", detlog.WithSourcePrefix("camera_"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range report.Sources {
//	    fmt.Println(s.Source, s.Frames, s.Median)
//	}
//
// Lines that do not carry an "Analysis complete" record are skipped, as are
// records above the max-count ceiling. An input with no records yields an
// empty Report, not an error.
package detlog
