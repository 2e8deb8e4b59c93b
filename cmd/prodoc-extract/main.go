package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/tcs-research/prodoc-extract/internal/batch"
	"github.com/tcs-research/prodoc-extract/internal/config"
	"github.com/tcs-research/prodoc-extract/internal/extract"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging installs the process-wide logger described by the config.
// User-facing output goes to stdout via fmt; diagnostics go to stderr.
func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.LogFormat == config.FormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// buildEngine compiles the rule set, with overrides applied when configured.
func buildEngine(cfg *config.Config) (*extract.Engine, error) {
	rules := extract.DefaultConfig()
	if cfg.RulesFile != "" {
		overrides, err := extract.LoadOverrides(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = rules.Apply(overrides)
	}
	return extract.NewEngine(rules)
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		slog.Error("failed to build extraction engine", "error", err)
		os.Exit(1)
	}

	processor := batch.NewProcessor(engine, slog.Default())
	runner, err := batch.NewRunner(processor, cfg.Pattern, cfg.Workers, cfg.Verbose, slog.Default())
	if err != nil {
		slog.Error("failed to build runner", "error", err)
		os.Exit(1)
	}

	// Cancel the run on interrupt so partial work stops cleanly
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		cancel()
	}()

	rule := strings.Repeat("=", 70)
	fmt.Println(rule)
	fmt.Println("PROJECT DOCUMENT INFO EXTRACTION")
	fmt.Println(rule)
	fmt.Printf("\nInput directory: %s\n", cfg.InputDir)
	fmt.Printf("Output file: %s\n", cfg.OutputFile)
	if cfg.RulesFile != "" {
		fmt.Printf("Rules override: %s\n", cfg.RulesFile)
	}
	fmt.Println()

	records, err := runner.Run(ctx, cfg.InputDir)
	if errors.Is(err, batch.ErrNoDocuments) {
		fmt.Printf("No files matching %s found in %s\n", cfg.Pattern, cfg.InputDir)
		return
	}
	if err != nil {
		slog.Error("extraction run failed", "error", err)
		os.Exit(1)
	}

	if err := batch.WriteRecords(cfg.OutputFile, records); err != nil {
		slog.Error("failed to save results", "error", err)
		os.Exit(1)
	}
	fmt.Printf("\n✓ Results saved to: %s\n", cfg.OutputFile)

	printSummary(batch.Summarize(records))
}

// printSummary renders the closing coverage block
func printSummary(s batch.Summary) {
	rule := strings.Repeat("=", 70)
	fmt.Printf("\n%s\n", rule)
	fmt.Println("EXTRACTION SUMMARY")
	fmt.Println(rule)
	fmt.Printf("Total files processed: %d\n", s.Total)
	fmt.Printf("Successfully processed: %d\n", s.Total-s.Errors)
	fmt.Printf("Errors: %d\n", s.Errors)
	fmt.Printf("Brief descriptions found: %d (%.1f%%)\n", s.WithBrief, s.Percent(s.WithBrief))
	fmt.Printf("Challenges found: %d (%.1f%%)\n", s.WithChallenges, s.Percent(s.WithChallenges))
	fmt.Println(rule)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Prodoc Extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
