package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version is the detlog release version.
const Version = "0.1.0"

// Config holds all detlog configuration.
type Config struct {
	Input       InputConfig
	Filter      FilterConfig
	Report      ReportConfig
	LogLevel    string // "debug", "info", "warn", "error"
	ShowVersion bool
}

// InputConfig selects the log to analyze.
type InputConfig struct {
	LogPath string // "-" reads stdin
}

// FilterConfig holds record admission settings.
type FilterConfig struct {
	SourcePrefix string // empty disables prefix filtering
	MaxCount     int    // negative disables the ceiling
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Threshold int
	Top       int    // non-positive disables the outlier section
	Format    string // "text" or "json"
	File      string // optional copy of the report on disk
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Input: InputConfig{
			LogPath: getenv("DETLOG_LOG", "va-output.log"),
		},
		Filter: FilterConfig{
			SourcePrefix: os.Getenv("DETLOG_SOURCE_PREFIX"),
			MaxCount:     getenvInt("DETLOG_MAX_COUNT", 200),
		},
		Report: ReportConfig{
			Threshold: getenvInt("DETLOG_THRESHOLD", 15),
			Top:       getenvInt("DETLOG_TOP", 10),
			Format:    getenv("DETLOG_FORMAT", "text"),
			File:      os.Getenv("DETLOG_REPORT_FILE"),
		},
		LogLevel: getenv("DETLOG_LOG_LEVEL", "info"),
	}
}

var (
	validFormats   = []string{"text", "json"}
	validLogLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Input.LogPath == "" {
		errs = append(errs, errors.New("log path must not be empty"))
	}
	if !contains(validFormats, c.Report.Format) {
		errs = append(errs, fmt.Errorf("invalid report format %q (want one of %s)",
			c.Report.Format, strings.Join(validFormats, ", ")))
	}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
