// Package main is the entry point for the dir-insight application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/dir-insight/internal/analyzer"
	"github.com/joe/dir-insight/internal/config"
	"github.com/joe/dir-insight/internal/logging"
	"github.com/joe/dir-insight/internal/report"
	"github.com/joe/dir-insight/internal/tui"
	"github.com/joe/dir-insight/internal/tui/shared"
	actionable "github.com/joe/dir-insight/pkg/errors"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitCancelled = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitFailure
	}

	interactive := useTUI(cfg, term.IsTerminal(int(os.Stdout.Fd())))

	// The TUI owns the terminal, so it only logs to a file
	var console io.Writer = os.Stderr
	if interactive {
		console = nil
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Console: console})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitFailure
	}

	defer func() { _ = closer.Close() }()

	if interactive {
		return runTUI(cfg, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runBatch(ctx, cfg, logger, os.Stdout, os.Stderr)
}

// useTUI reports whether to run the terminal UI: always in interactive mode, and for the
// auto format when stdout is a terminal.
func useTUI(cfg *config.Config, stdoutIsTerminal bool) bool {
	if cfg.InteractiveMode {
		return true
	}

	return cfg.Format == config.FormatAuto && stdoutIsTerminal
}

func runTUI(cfg *config.Config, logger zerolog.Logger) int {
	model := tui.NewAppModel(cfg, logger)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitFailure
	}

	var state string

	switch app := final.(type) {
	case tui.AppModel:
		state = app.FinalState()
	case *tui.AppModel:
		state = app.FinalState()
	}

	return tuiExitCode(state)
}

// tuiExitCode maps how the last analysis in the TUI ended to the process exit code.
func tuiExitCode(finalState string) int {
	switch finalState {
	case shared.StateError:
		return exitFailure
	case shared.StateCancelled:
		return exitCancelled
	default:
		return exitOK
	}
}

// runBatch analyzes cfg.Path and writes the result to stdout as text or JSON.
// Fatal errors go to stderr with suggestions.
func runBatch(ctx context.Context, cfg *config.Config, logger zerolog.Logger, stdout, stderr io.Writer) int {
	engine, err := analyzer.NewEngine(cfg.Path)
	if err != nil {
		return reportFailure(stderr, err, cfg.Path)
	}

	defer func() {
		if closeErr := engine.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("failed to close filesystem")
		}
	}()

	engine.Workers = cfg.Workers
	engine.TopFiles = cfg.Top
	engine.Exclude = cfg.Exclude
	engine.Logger = logger

	if cfg.UTC {
		engine.Location = time.UTC
	}

	result, skipped, err := engine.Scan(ctx)
	if err != nil {
		return reportFailure(stderr, err, cfg.Path)
	}

	if len(skipped) > 0 {
		logger.Warn().Int("count", len(skipped)).Msg("skipped unreadable entries; run with --log-level debug to list them")
	}

	if err := writeResult(stdout, cfg, result, len(skipped)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitFailure
	}

	return exitOK
}

// writeResult renders text only when asked for; any other format is the JSON document.
func writeResult(w io.Writer, cfg *config.Config, result analyzer.AnalysisResult, skipped int) error {
	if cfg.Format == config.FormatText {
		return report.WriteText(w, cfg.Path, report.Sections(result, skipped)) //nolint:wrapcheck // Already wrapped
	}

	data, err := result.IndentedJSON()
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func reportFailure(stderr io.Writer, err error, path string) int {
	enriched := actionable.NewEnricher().Enrich(err, path)

	fmt.Fprintf(stderr, "Error: %v\n", enriched)

	if suggestions := actionable.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintf(stderr, "\nSuggestions:\n%s\n", suggestions)
	}

	if errors.Is(err, analyzer.ErrCancelled) {
		return exitCancelled
	}

	return exitFailure
}
