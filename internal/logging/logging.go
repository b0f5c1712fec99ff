// Package logging builds the zerolog logger shared by the CLI and the analysis engine:
// a human-friendly console writer plus an optional size-rotated log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Log file rotation limits.
const (
	maxFileSizeMB = 10
	maxBackups    = 3
	maxAgeDays    = 28
)

// Options configures New.
type Options struct {
	Level   string    // zerolog level name; empty means warn
	File    string    // optional log file, rotated by lumberjack
	Console io.Writer // console destination; nil disables console output
}

// New builds a logger from opts. The returned closer flushes and closes the log file and must
// be called on exit; it is a no-op when no file is configured.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	levelName := strings.ToLower(opts.Level)
	if levelName == "" {
		levelName = zerolog.WarnLevel.String()
	}

	lvl, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	if opts.Console != nil {
		writers = append(writers, zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = opts.Console
			w.TimeFormat = time.Kitchen
			w.NoColor = opts.Console != os.Stderr
		}))
	}

	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		writers = append(writers, lj)
		closer = lj
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(lvl).With().Timestamp()
	if lvl <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}

	return ctx.Logger(), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
