package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/crimson-sun/detlog/internal/config"
	"github.com/crimson-sun/detlog/internal/engine"
	"github.com/crimson-sun/detlog/internal/engine/filter"
	"github.com/crimson-sun/detlog/internal/logging"
	"github.com/crimson-sun/detlog/internal/output"
	"github.com/crimson-sun/detlog/internal/output/file"
	"github.com/crimson-sun/detlog/internal/output/multi"
	"github.com/crimson-sun/detlog/internal/pipeline"

	// Register report formats.
	_ "github.com/crimson-sun/detlog/internal/output/jsonout"
	_ "github.com/crimson-sun/detlog/internal/output/text"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one analysis and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(config.Load(), args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "detlog %s\n", config.Version)
		return 0
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "detlog: invalid configuration:\n%v\n", err)
		return 2
	}

	logging.Init(cfg.Report.Format == "json", logging.ParseLevel(cfg.LogLevel))

	out, err := buildOutput(cfg, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	maxCount := int64(cfg.Filter.MaxCount)
	if maxCount < 0 {
		maxCount = filter.NoMaxCount
	}
	eng := engine.New(filter.Policy{
		SourcePrefix: cfg.Filter.SourcePrefix,
		MaxCount:     maxCount,
	}, int64(cfg.Report.Threshold), cfg.Report.Top)

	slog.Debug("detlog: starting",
		"log", cfg.Input.LogPath,
		"source_prefix", cfg.Filter.SourcePrefix,
		"threshold", cfg.Report.Threshold,
		"max_count", cfg.Filter.MaxCount,
		"top", cfg.Report.Top,
		"format", cfg.Report.Format,
	)

	p := pipeline.New(eng, out)
	_, runErr := p.Run(ctx, cfg.Input.LogPath)
	closeErr := p.Close()

	if runErr != nil {
		fmt.Fprintln(stderr, runErr)
		return 1
	}
	if closeErr != nil {
		fmt.Fprintln(stderr, closeErr)
		return 1
	}
	return 0
}

// parseFlags overlays command-line flags on the environment configuration.
func parseFlags(cfg config.Config, args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("detlog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "统计检测日志中的目标框数量分布")
		fmt.Fprintln(stderr, "\nusage: detlog [flags]")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Input.LogPath, "log", cfg.Input.LogPath, "待分析的日志路径 (\"-\" reads stdin)")
	fs.StringVar(&cfg.Filter.SourcePrefix, "source-prefix", cfg.Filter.SourcePrefix, "仅统计指定前缀的视频源，默认不过滤")
	fs.IntVar(&cfg.Report.Threshold, "threshold", cfg.Report.Threshold, "判定为高检测数的阈值")
	fs.IntVar(&cfg.Filter.MaxCount, "max-count", cfg.Filter.MaxCount, "忽略超过该检测数的记录，用于过滤脏数据 (negative disables)")
	fs.IntVar(&cfg.Report.Top, "top", cfg.Report.Top, "输出检测数最高的前 N 帧，设置为 0 可跳过")
	fs.StringVar(&cfg.Report.Format, "format", cfg.Report.Format, "report format: text or json")
	fs.StringVar(&cfg.Report.File, "report-file", cfg.Report.File, "also write the report to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level: debug, info, warn, error")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(stderr, err)
		return cfg, err
	}
	return cfg, nil
}

// buildOutput writes the report to stdout and, when configured, to a file as well.
func buildOutput(cfg config.Config, stdout io.Writer) (output.Output, error) {
	ctor, err := output.Get(cfg.Report.Format)
	if err != nil {
		return nil, err
	}
	out := ctor(stdout)
	if cfg.Report.File == "" {
		return out, nil
	}

	f, err := file.New(cfg.Report.File, ctor)
	if err != nil {
		return nil, err
	}
	return multi.New(out, f), nil
}
