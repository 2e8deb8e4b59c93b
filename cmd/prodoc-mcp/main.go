package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/tcs-research/prodoc-extract/internal/config"
	"github.com/tcs-research/prodoc-extract/internal/extract"
	"github.com/tcs-research/prodoc-extract/internal/mcpserver"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if err := runStdioMode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// runStdioMode starts the MCP server communicating over stdin/stdout.
func runStdioMode(cfg *config.Config) error {
	// Stdout carries only protocol messages, so diagnostics stay on stderr
	// and are silenced entirely unless debug logging is enabled.
	var logger *slog.Logger
	if cfg.IsDebug() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	} else {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	rules := extract.DefaultConfig()
	if cfg.RulesFile != "" {
		overrides, err := extract.LoadOverrides(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("failed to load rules file: %w", err)
		}
		rules = rules.Apply(overrides)
	}
	engine, err := extract.NewEngine(rules)
	if err != nil {
		return fmt.Errorf("failed to build extraction engine: %w", err)
	}

	server, err := mcpserver.NewServer(cfg, engine, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return server.Run(context.Background())
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Prodoc MCP Server\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
