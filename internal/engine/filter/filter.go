package filter

import (
	"strings"

	"github.com/crimson-sun/detlog/internal/model"
)

// Verdict is the outcome of evaluating one record.
type Verdict int

const (
	Admit          Verdict = iota
	RejectPrefix           // source does not carry the required prefix
	RejectMaxCount         // detections above the data-cleaning ceiling
)

// NoMaxCount disables the data-cleaning ceiling.
const NoMaxCount int64 = -1

// Policy decides which extracted records enter the dataset.
type Policy struct {
	// SourcePrefix restricts admission to sources starting with it
	// (case-sensitive). Empty means no restriction.
	SourcePrefix string
	// MaxCount rejects records with more detections. Negative disables it.
	MaxCount int64
}

// Evaluate returns the verdict for rec. The prefix check runs first.
func (p Policy) Evaluate(rec model.DetectionRecord) Verdict {
	if p.SourcePrefix != "" && !strings.HasPrefix(rec.Source, p.SourcePrefix) {
		return RejectPrefix
	}
	if p.MaxCount >= 0 && rec.Detections > p.MaxCount {
		return RejectMaxCount
	}
	return Admit
}

// Admits reports whether rec passes the policy.
func (p Policy) Admits(rec model.DetectionRecord) bool {
	return p.Evaluate(rec) == Admit
}
