package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/distant"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg := distant.LoadConfig()
	logger := distant.NewLogger(cfg.LogLevel)

	pipeline, err := distant.NewPipeline(cfg, logger)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	paths, err := distant.DiscoverSources(dir)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		logger.Error("no text files found in %s", dir)
		os.Exit(1)
	}
	logger.Info("found %d file(s) to analyze", len(paths))

	var sources []distant.SourceText
	loadFailures := 0
	for _, path := range paths {
		src, err := distant.LoadSourceText(path)
		if err != nil {
			logger.Error("skipping: %v", err)
			loadFailures++
			continue
		}
		sources = append(sources, src)
	}

	// Ctrl-C stops scheduling new texts; finished texts are still written out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, summary := pipeline.Run(ctx, sources)
	if len(results) == 0 {
		logger.Error("no results to save")
		os.Exit(1)
	}

	if err := distant.WriteResults(cfg.OutputPath, results); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	logger.Info("analysis complete: %d analyzed, %d failed, results saved to %s",
		summary.Analyzed, loadFailures+len(summary.Failures), cfg.OutputPath)
	for _, r := range results {
		fmt.Printf("  - %s by %s\n", r.Title, r.Author)
	}
}
