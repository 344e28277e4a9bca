// Package matcher extracts detection records from analyzer log text.
package matcher

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/crimson-sun/detlog/internal/model"
)

// linePattern matches the analyzer's per-frame completion message anywhere in a segment.
var linePattern = regexp.MustCompile(
	`Analysis complete - source: (?P<source>[^,]+), request: (?P<request>\d+), detections: (?P<count>\d+)`,
)

var (
	sourceIdx  = linePattern.SubexpIndex("source")
	requestIdx = linePattern.SubexpIndex("request")
	countIdx   = linePattern.SubexpIndex("count")
)

// Match extracts a record from one CR-free segment of a log line.
// It reports false when the segment does not contain a completion message,
// when the trimmed source is empty, or when a digit run overflows int64.
func Match(segment string) (model.DetectionRecord, bool) {
	m := linePattern.FindStringSubmatch(segment)
	if m == nil {
		return model.DetectionRecord{}, false
	}

	source := strings.TrimSpace(m[sourceIdx])
	if source == "" {
		return model.DetectionRecord{}, false
	}

	request, err := strconv.ParseInt(m[requestIdx], 10, 64)
	if err != nil {
		return model.DetectionRecord{}, false
	}
	count, err := strconv.ParseInt(m[countIdx], 10, 64)
	if err != nil {
		return model.DetectionRecord{}, false
	}

	return model.DetectionRecord{
		Source:     source,
		RequestID:  request,
		Detections: count,
	}, true
}

// Segments trims a raw line and splits it on carriage returns, so progress-style
// output that overwrote itself yields every sub-line.
func Segments(raw string) []string {
	return strings.Split(strings.TrimSpace(raw), "\r")
}
