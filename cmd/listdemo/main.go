package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go_lists/common/encode_utils"
	"go_lists/common/scenario"
)

const (
	version = "0.1.0"
	usage   = `listdemo - run a list operation scenario against ArrayList or LinkedList`
)

func main() {
	var showHelp, showVersion, verbose bool
	var inputFile, encodingStr string

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\nUsage:\n", usage)
		flag.PrintDefaults()
	}

	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&verbose, "v", false, "Verbose (debug) logging")
	flag.StringVar(&inputFile, "input", "", "Scenario YAML file (defaults to stdin)")
	flag.StringVar(&encodingStr, "encoding", encode_utils.EncodingUTF8, "Output encoding: UTF-8, UTF-8-BOM, GBK, GB18030, HZ-GB2312")

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("listdemo version %s\n", version)
		os.Exit(0)
	}

	if len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input instead.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var (
		s   *scenario.Scenario
		err error
	)
	if inputFile == "" {
		s, err = scenario.Parse(os.Stdin)
	} else {
		s, err = scenario.Load(inputFile)
	}
	if err != nil {
		slog.Error("[listdemo] load scenario failed", slog.String("input", inputFile), slog.Any("err", err))
		os.Exit(1)
	}

	out, err := encode_utils.NewWriter(os.Stdout, encodingStr)
	if err != nil {
		slog.Error("[listdemo] invalid output encoding", slog.String("encoding", encodingStr), slog.Any("err", err))
		os.Exit(1)
	}

	report, err := scenario.NewRunner(scenario.WithRunnerLogger(logger)).Run(s)
	if err != nil {
		slog.Error("[listdemo] run scenario failed", slog.String("scenario", s.Name), slog.Any("err", err))
		os.Exit(1)
	}
	if _, err := report.WriteTo(out); err != nil {
		slog.Error("[listdemo] write report failed", slog.Any("err", err))
		os.Exit(1)
	}
	// 有状态的编码 (HZ-GB2312) 需要 Close 才会输出结尾
	if closer, ok := out.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Error("[listdemo] flush output failed", slog.Any("err", err))
			os.Exit(1)
		}
	}
	if report.Failed() {
		os.Exit(2)
	}
}
