package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Log output formats
	FormatText = "text"
	FormatJSON = "json"

	// Default values
	DefaultOutputFile = "project_info.json"
	DefaultPattern    = "*.txt"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = FormatText

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the extraction pipeline
type Config struct {
	// Input/output configuration
	InputDir   string
	OutputFile string
	Pattern    string

	// Pipeline configuration
	Workers   int
	RulesFile string

	// Application configuration
	Version   string
	AppName   string
	LogLevel  string
	LogFormat string
	Verbose   bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		InputDir:   currentDir,
		OutputFile: DefaultOutputFile,
		Pattern:    DefaultPattern,
		Workers:    runtime.NumCPU(),
		Version:    "1.0.0",
		AppName:    "prodoc-extract",
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.InputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.InputDir); err == nil {
			cfg.InputDir = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix; hyphenated keys map to underscores
	viper.SetEnvPrefix("PRODOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("input-dir", cfg.InputDir)
	viper.SetDefault("output-file", cfg.OutputFile)
	viper.SetDefault("pattern", cfg.Pattern)
	viper.SetDefault("workers", cfg.Workers)
	viper.SetDefault("rules", cfg.RulesFile)
	viper.SetDefault("log-level", cfg.LogLevel)
	viper.SetDefault("log-format", cfg.LogFormat)
	viper.SetDefault("verbose", cfg.Verbose)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.StringP("input-dir", "i", cfg.InputDir, "Directory containing extracted .txt project documents")
	pflag.StringP("output-file", "o", cfg.OutputFile, "Output JSON file path")
	pflag.String("pattern", cfg.Pattern, "Glob pattern for input files")
	pflag.Int("workers", cfg.Workers, "Number of documents processed concurrently")
	pflag.String("rules", cfg.RulesFile, "Optional JSON file overriding the built-in extraction rules")
	pflag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.String("log-format", cfg.LogFormat, "Log output format (text, json)")
	pflag.BoolP("verbose", "v", cfg.Verbose, "Log every processed file instead of every hundredth")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("input-dir", pflag.Lookup("input-dir"))
	_ = viper.BindPFlag("output-file", pflag.Lookup("output-file"))
	_ = viper.BindPFlag("pattern", pflag.Lookup("pattern"))
	_ = viper.BindPFlag("workers", pflag.Lookup("workers"))
	_ = viper.BindPFlag("rules", pflag.Lookup("rules"))
	_ = viper.BindPFlag("log-level", pflag.Lookup("log-level"))
	_ = viper.BindPFlag("log-format", pflag.Lookup("log-format"))
	_ = viper.BindPFlag("verbose", pflag.Lookup("verbose"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nProdoc Extract - pulls brief descriptions and challenge statements from project documents\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # process .txt files in the current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i /data/text -o results.json    # custom input and output paths\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --rules custom_rules.json        # override built-in extraction rules\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --workers 4 --verbose            # bounded concurrency, per-file progress\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PRODOC_INPUT_DIR    Input directory\n")
		fmt.Fprintf(os.Stderr, "  PRODOC_OUTPUT_FILE  Output JSON file\n")
		fmt.Fprintf(os.Stderr, "  PRODOC_PATTERN      Input file glob pattern\n")
		fmt.Fprintf(os.Stderr, "  PRODOC_WORKERS      Concurrent document limit\n")
		fmt.Fprintf(os.Stderr, "  PRODOC_RULES        Extraction rules override file\n")
		fmt.Fprintf(os.Stderr, "  PRODOC_LOG_LEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  PRODOC_LOG_FORMAT   Log output format\n")
	}
}

// checkVersionFlag checks if version flag was requested. The short -v is
// taken by --verbose, so only the long forms count.
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.InputDir = viper.GetString("input-dir")
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Pattern = viper.GetString("pattern")
	cfg.Workers = viper.GetInt("workers")
	cfg.RulesFile = viper.GetString("rules")
	cfg.LogLevel = viper.GetString("log-level")
	cfg.LogFormat = viper.GetString("log-format")
	cfg.Verbose = viper.GetBool("verbose")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate input directory
	if c.InputDir == "" {
		return errors.New("input directory cannot be empty")
	}
	info, err := os.Stat(c.InputDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", c.InputDir)
	}
	if err != nil {
		return fmt.Errorf("cannot access input directory %s: %w", c.InputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", c.InputDir)
	}

	// Validate output file, creating its directory if needed
	if c.OutputFile == "" {
		return errors.New("output file cannot be empty")
	}
	if dir := filepath.Dir(c.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create output directory %s: %w", dir, err)
		}
	}

	// Validate pipeline settings
	if c.Pattern == "" {
		return errors.New("file pattern cannot be empty")
	}
	if c.Workers < 1 {
		return errors.New("worker count must be positive")
	}
	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); err != nil {
			return fmt.Errorf("cannot access rules file %s: %w", c.RulesFile, err)
		}
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	// Validate log format
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("invalid log format: %s (must be one of: text, json)", c.LogFormat)
	}

	return nil
}

// SlogLevel maps the configured log level onto slog's scale
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputDir: %s, OutputFile: %s, Pattern: %s, Workers: %d, RulesFile: %s, LogLevel: %s}",
		c.InputDir, c.OutputFile, c.Pattern, c.Workers, c.RulesFile, c.LogLevel)
}
