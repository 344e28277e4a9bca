// Package testdata embeds a captured analyzer log and the reports an
// operator expects from it.
package testdata

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed sample.log
var sampleLog []byte

// The sample contains progress-style carriage returns, one invalid UTF-8
// byte, one count above the default ceiling, and one non-numeric request.
var (
	//go:embed expected_default.txt
	ExpectedDefault string

	// ExpectedCameraTop3 is the report for source prefix "camera_",
	// threshold 20, top 3.
	//go:embed expected_camera_top3.txt
	ExpectedCameraTop3 string

	// ExpectedEmpty is the report when no source matches the prefix.
	//go:embed expected_empty.txt
	ExpectedEmpty string
)

// SampleLog returns a fresh reader over the embedded analyzer log.
func SampleLog() io.Reader {
	return bytes.NewReader(sampleLog)
}

// SampleLogBytes returns a copy of the embedded analyzer log.
func SampleLogBytes() []byte {
	return bytes.Clone(sampleLog)
}
