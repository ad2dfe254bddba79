package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"GPAConverter/internal/app"
	"GPAConverter/internal/cli"
	"GPAConverter/internal/config"
	"GPAConverter/internal/logging"
	"GPAConverter/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	fs := cli.NewFlagSet("gpaconverter")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		fs.SetOutput(os.Stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Printf("gpaconverter version %s\n", version.Version)
		return 0
	}

	config.LoadDotenv()
	cfg := config.Load(opts.ConfigPath)

	level := cfg.Logging.Level
	if opts.Quiet {
		level = "error"
	}
	logger := logging.New(level)

	application, err := app.New(cfg, opts, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}

	report, err := application.Run(context.Background())
	if err != nil {
		logger.Error("run failed", "error", err)
		return 1
	}

	fmt.Printf("IAA: %.2f\n", report.DecimalAverage)
	fmt.Printf("GPA (scale %d): %.2f\n", report.ScaleID, report.GPAAverage)
	if report.ExportedTo != "" {
		fmt.Printf("file saved as %s\n", report.ExportedTo)
	}
	return 0
}
