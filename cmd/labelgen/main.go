package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/typelabel/typelabel/processor"
)

var (
	path    string
	types   string
	workers int
	dryRun  bool
	verbose bool
)

func init() {
	flag.StringVar(&path, "path", ".", "root directory to scan for label directives")
	flag.StringVar(&types, "type", "", "comma-separated type names that must carry a directive; empty scans every annotated type")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent package scans")
	flag.BoolVar(&dryRun, "dry-run", false, "scan and report without writing files")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
}

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "labelgen: unexpected arguments %q\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	proc := processor.New(workers)
	proc.DryRun = dryRun
	proc.Log = logger
	for name := range strings.SplitSeq(types, ",") {
		if name = strings.TrimSpace(name); name != "" {
			proc.Types = append(proc.Types, name)
		}
	}

	report, err := proc.Run(context.Background(), path)
	if err != nil {
		logger.Error("labelgen failed", "error", err)
		os.Exit(1)
	}
	if len(report.Diagnostics) > 0 {
		for _, d := range report.Diagnostics {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		os.Exit(1)
	}

	if dryRun {
		for _, pkg := range report.Packages {
			for _, t := range pkg.Types {
				fmt.Printf("%s: %s %q\n", pkg.Dir, t.Name, t.Label)
			}
		}
		return
	}
	logger.Info("labelgen complete", "written", len(report.Written), "removed", len(report.Removed))
}
