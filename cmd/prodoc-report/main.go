package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/tcs-research/prodoc-extract/internal/report"
)

var (
	input    = pflag.StringP("input", "i", "", "Results JSON file, or a directory of them to merge")
	output   = pflag.StringP("output", "o", "results_combined.xlsx", "Path for the Excel workbook")
	analysis = pflag.String("analysis", "", "Optional path for the missing-field analysis text file")
	verbose  = pflag.BoolP("verbose", "v", false, "Enable debug logging")
)

func main() {
	pflag.Usage = printUsage
	pflag.Parse()

	if *input == "" {
		fmt.Fprintf(os.Stderr, "Error: --input is required\n\n")
		printUsage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reporter := report.NewReporter(logger)

	records, err := reporter.Load(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d record(s) from %s\n", len(records), *input)

	if err := reporter.WriteWorkbook(*output, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Workbook written to: %s\n\n", *output)

	result := report.Analyze(records)
	text := result.Format()
	fmt.Print(text)

	if *analysis != "" {
		if err := os.WriteFile(*analysis, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write analysis file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nAnalysis written to: %s\n", *analysis)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nProdoc Report - merges extraction results into an Excel workbook and prints\n")
	fmt.Fprintf(os.Stderr, "a missing-field analysis listing project IDs that need manual review.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	pflag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s -i results/\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -i project_info.json -o review.xlsx --analysis missing.txt\n", os.Args[0])
}
