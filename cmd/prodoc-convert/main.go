package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/tcs-research/prodoc-extract/internal/convert"
)

var (
	inputDir    = pflag.StringP("input-dir", "i", "", "Directory containing source PDF documents")
	outputDir   = pflag.StringP("output-dir", "o", "text", "Directory for extracted .txt files")
	maxFileSize = pflag.Int64("max-file-size", 100, "Maximum PDF file size in megabytes")
	verbose     = pflag.BoolP("verbose", "v", false, "Enable debug logging")
)

func main() {
	pflag.Usage = printUsage
	pflag.Parse()

	if *inputDir == "" {
		fmt.Fprintf(os.Stderr, "Error: --input-dir is required\n\n")
		printUsage()
		os.Exit(1)
	}

	info, err := os.Stat(*inputDir)
	if os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: Directory not found: %s\n", *inputDir)
		os.Exit(1)
	}
	if err == nil && !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: Not a directory: %s\n", *inputDir)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		cancel()
	}()

	converter := convert.NewConverter(*maxFileSize*1024*1024, logger)
	stats, err := converter.Run(ctx, *inputDir, *outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d PDF file(s)\n", stats.Found)
	fmt.Printf("Converted: %d\n", stats.Converted)
	fmt.Printf("Scanned (no text layer): %d\n", stats.Scanned)
	fmt.Printf("Failed (invalid PDF): %d\n", stats.Failed)

	if stats.Converted == 0 {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nProdoc Convert - writes the text layer of PDF project documents to .txt files\n")
	fmt.Fprintf(os.Stderr, "Scanned documents without a text layer are reported, not converted; they\n")
	fmt.Fprintf(os.Stderr, "need OCR before extraction.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	pflag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s -i ./pdfs                    # write .txt files into ./text\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -i ./pdfs -o ./corpus -v     # custom output, per-file progress\n", os.Args[0])
}
