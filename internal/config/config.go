// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/joe/dir-insight/pkg/filesystem"
)

// OutputFormat selects how the analysis result is presented
type OutputFormat int

const (
	// FormatAuto - interactive TUI on a terminal, JSON when stdout is redirected
	FormatAuto OutputFormat = iota
	// FormatText - plain text report on stdout
	FormatText
	// FormatJSON - indented JSON document on stdout
	FormatJSON
)

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseOutputFormat parses a string into an OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	s = strings.ToLower(s)
	switch s {
	case "auto", "":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid output format: %s (valid: auto, text, json)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Exported constants.
const (
	DefaultWorkers  = 4
	DefaultTop      = 20
	DefaultLogLevel = "warn"
)

// Config holds the application configuration
type Config struct {
	Path            string       `arg:"positional" help:"Directory to analyze (local path or sftp://user@host:port/path)"`
	InteractiveMode bool         `arg:"-i,--interactive" help:"Prompt for the directory in the terminal UI"`
	Workers         int          `arg:"-w,--workers" default:"4" help:"Number of concurrent stat workers per directory"`
	Top             int          `arg:"-n,--top" default:"20" help:"Number of largest files to report"`
	Exclude         []string     `arg:"-x,--exclude,separate" help:"Glob pattern of entries to skip (repeatable, e.g. node_modules, **/*.tmp)"`
	Format          OutputFormat `arg:"-f,--format" default:"auto" help:"Output format: auto|text|json"`
	UTC             bool         `arg:"--utc" help:"Report timestamps in UTC instead of local time"`
	LogLevel        string       `arg:"--log-level" default:"warn" help:"Log level: trace|debug|info|warn|error"`
	LogFile         string       `arg:"--log-file" help:"Also write logs to this file (rotated)"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Summarize a directory tree: sizes, file types, largest/oldest/newest files, duplicates and naming conventions"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "dir-insight 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Workers:  DefaultWorkers,
		Top:      DefaultTop,
		Format:   FormatAuto,
		LogLevel: DefaultLogLevel,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	// If no path provided, default to interactive mode
	if cfg.Path == "" {
		cfg.InteractiveMode = true
	}

	if cfg.InteractiveMode && cfg.Format == FormatJSON {
		return nil, errors.New("interactive mode cannot produce JSON output; pass a path")
	}

	if !cfg.InteractiveMode {
		if err := ValidatePath(cfg.Path); err != nil {
			return nil, err
		}
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	if cfg.Top < 1 {
		return nil, fmt.Errorf("top must be at least 1, got %d", cfg.Top)
	}

	for _, pattern := range cfg.Exclude {
		if err := ValidateFilePattern(pattern); err != nil {
			return nil, err
		}
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	return cfg, nil
}

// ValidatePath checks that a path is present and, for sftp:// URLs, well formed.
// Whether a local directory exists is left to the analysis, which reports it as unreadable.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is required")
	}

	if _, err := filesystem.ParsePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	return nil
}

// ValidateFilePattern checks that a doublestar glob pattern is well formed.
// An empty pattern is valid and matches nothing.
func ValidateFilePattern(pattern string) error {
	if pattern == "" {
		return nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid exclude pattern: %q", pattern)
	}

	return nil
}
