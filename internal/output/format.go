package output

import (
	"fmt"

	"github.com/crimson-sun/detlog/internal/model"
)

const (
	// SummaryHeader opens the per-source section.
	SummaryHeader = "=== 每路视频源汇总 ==="
	// NoRecordsMessage replaces the whole report when nothing was admitted.
	NoRecordsMessage = "未解析到任何检测记录，请检查日志或过滤条件。"
)

// OutlierHeader titles the top-N section. It names the requested n, not
// the number of records listed.
func OutlierHeader(n int) string {
	return fmt.Sprintf("=== 检测数最高的前 %d 帧 ===", n)
}

// SummaryLine renders one source's statistics on a single line.
func SummaryLine(s model.SourceStatistics, threshold int) string {
	return fmt.Sprintf(
		"%s: frames=%d, avg=%.2f, median=%.2f, p95=%.2f, zero=%d (%.1f%%), >=%d=%d (%.2f%%), min=%d, max=%d",
		s.Source, s.FrameCount,
		s.Mean, s.Median, s.P95,
		s.ZeroCount, s.ZeroRate,
		threshold, s.HighCount, s.HighRate,
		s.Min, s.Max,
	)
}

// RecordLine renders one ranked frame.
func RecordLine(rec model.DetectionRecord) string {
	return fmt.Sprintf("source=%s, request=%d, detections=%d", rec.Source, rec.RequestID, rec.Detections)
}
