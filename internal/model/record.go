package model

// DetectionRecord is one parsed "Analysis complete" line.
type DetectionRecord struct {
	Source     string `json:"source"`     // video feed identifier, trimmed
	RequestID  int64  `json:"request_id"` // analysis request sequence number
	Detections int64  `json:"detections"` // bounding boxes reported for the frame
}
