// Package main is the entry point for the slink smoke tool, the manual
// consumer of the slist container: it runs operation scenarios against
// the public API, optionally re-running them as the script files change,
// or opens the interactive visualizer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/slink/internal/scenario"
	"github.com/dshills/slink/internal/smoke"
	"github.com/dshills/slink/internal/visual"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	tui   bool
	watch bool
	quiet bool
	files []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.tui {
		app, err := visual.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
			return 1
		}
		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	runOnce := func() int {
		scenarios, err := loadScenarios(opts.files)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		report := smoke.Run(scenarios)
		if !opts.quiet || !report.OK() {
			report.Render(os.Stdout)
		}
		if !report.OK() {
			return 1
		}
		return 0
	}

	code := runOnce()
	if !opts.watch {
		return code
	}

	if len(opts.files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -watch requires scenario files")
		return 1
	}

	// Watch until interrupted; each change re-runs the scripts.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	err := smoke.Watch(ctx, opts.files, func() { runOnce() })
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadScenarios reads every script file, falling back to the built-in
// scenarios when none are given.
func loadScenarios(files []string) ([]scenario.Scenario, error) {
	if len(files) == 0 {
		return scenario.Default(), nil
	}
	var all []scenario.Scenario
	for _, path := range files {
		scenarios, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		all = append(all, scenarios...)
	}
	return all, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.BoolVar(&opts.tui, "tui", false, "Open the interactive visualizer")
	flag.BoolVar(&opts.watch, "watch", false, "Re-run scenarios when script files change")
	flag.BoolVar(&opts.watch, "w", false, "Re-run scenarios when script files change (shorthand)")
	flag.BoolVar(&opts.quiet, "q", false, "Only print reports that contain failures")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "slink - singly linked list smoke tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage: slink [options] [scenarios.yaml|scenarios.toml ...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  slink                       Run the built-in scenarios\n")
		fmt.Fprintf(os.Stderr, "  slink ops.yaml              Run a scenario script\n")
		fmt.Fprintf(os.Stderr, "  slink -w ops.yaml           Re-run on every change to ops.yaml\n")
		fmt.Fprintf(os.Stderr, "  slink -tui                  Interactive visualizer\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("slink %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}
