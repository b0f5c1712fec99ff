// Package analyzer walks a directory tree once and summarizes its contents: counts and sizes,
// per-type statistics, the largest/oldest/newest files, average age, depth, hidden files,
// probable duplicate name patterns and naming-convention tallies.
package analyzer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/joe/dir-insight/pkg/filesystem"
)

// consumerBufferSize is the per-analyzer channel buffer between the walker and its consumers.
const consumerBufferSize = 256

// Engine runs analyses of one root directory.
type Engine struct {
	Root         string                // Directory to analyze, as understood by FS
	FS           filesystem.FileSystem // Filesystem the root lives on
	Workers      int                   // Concurrent stat workers per directory (default: 4)
	TopFiles     int                   // Capacity of the largest-files list (default: 20)
	Exclude      []string              // Doublestar patterns for entries to skip
	TimeProvider TimeProvider          // Source of the analysis timestamp
	Location     *time.Location        // Zone for serialized timestamps (default: local)
	Logger       zerolog.Logger

	filesSeen atomic.Int64
	bytesSeen atomic.Int64
}

// Progress is a point-in-time view of a running scan.
type Progress struct {
	Files int64
	Bytes int64
}

// Progress returns the files and bytes seen so far by the current or last scan.
// It is safe to call from any goroutine.
func (e *Engine) Progress() Progress {
	return Progress{Files: e.filesSeen.Load(), Bytes: e.bytesSeen.Load()}
}

// NewEngine creates an engine for a local path or sftp://user@host:port/path URL.
// A filesystem that cannot be created (bad URL, unreachable host) is a RootUnreadable failure.
// Call Close when done.
func NewEngine(path string) (*Engine, error) {
	fsys, root, err := filesystem.CreateFileSystem(path)
	if err != nil {
		return nil, &RootError{Path: path, Err: err}
	}

	return NewEngineWithFS(fsys, root), nil
}

// NewEngineWithFS creates an engine over an existing filesystem.
func NewEngineWithFS(fsys filesystem.FileSystem, root string) *Engine {
	return &Engine{
		Root:         root,
		FS:           fsys,
		Workers:      DefaultWorkers,
		TopFiles:     DefaultTopFiles,
		TimeProvider: RealTimeProvider{},
		Location:     time.Local,
		Logger:       zerolog.Nop(),
	}
}

// Close releases the engine's filesystem.
func (e *Engine) Close() error {
	if e.FS == nil {
		return nil
	}

	return e.FS.Close()
}

// Analyze walks the root once and returns the completed result, or a *RootError
// (ErrRootUnreadable) or ErrCancelled. Unreadable entries inside the tree are skipped silently.
func (e *Engine) Analyze(ctx context.Context) (AnalysisResult, error) {
	result, _, err := e.Scan(ctx)

	return result, err
}

// Scan is Analyze that also returns the entries skipped because they could not be read.
func (e *Engine) Scan(ctx context.Context) (AnalysisResult, []EntryError, error) {
	clock := e.TimeProvider
	if clock == nil {
		clock = RealTimeProvider{}
	}

	now := clock.Now()
	started := time.Now()

	e.filesSeen.Store(0)
	e.bytesSeen.Store(0)

	logger := e.Logger.With().Str("root", e.Root).Logger()

	logger.Info().Int("workers", e.Workers).Int("top", e.TopFiles).Msg("starting analysis")

	agg := NewAggregator(e.TopFiles)
	dups := NewDuplicateDetector()
	naming := NewNamingClassifier()

	// Each analyzer is owned by exactly one goroutine fed by its own channel
	var wg sync.WaitGroup

	consumers := []func(FileRecord){agg.Add, dups.Add, naming.Add}
	feeds := make([]chan FileRecord, len(consumers))

	for i, consume := range consumers {
		feed := make(chan FileRecord, consumerBufferSize)
		feeds[i] = feed

		wg.Add(1)

		go func() {
			defer wg.Done()

			for rec := range feed {
				consume(rec)
			}
		}()
	}

	walker := NewWalker(e.FS, e.Workers, NewGlobFilter(e.Exclude...), logger)

	walk, err := walker.Walk(ctx, e.Root, func(rec FileRecord) {
		e.filesSeen.Add(1)
		e.bytesSeen.Add(rec.Size)

		for _, feed := range feeds {
			feed <- rec
		}
	})

	for _, feed := range feeds {
		close(feed)
	}

	wg.Wait()

	if err != nil {
		if errors.Is(err, ErrCancelled) {
			logger.Warn().Msg("analysis cancelled")
		} else {
			logger.Error().Err(err).Msg("analysis failed")
		}

		return AnalysisResult{}, nil, err
	}

	loc := e.Location
	if loc == nil {
		loc = time.Local
	}

	result := assemble(walk, agg, dups, naming, now, loc)

	logger.Info().
		Int("files", result.TotalFiles).
		Int("folders", result.TotalFolders).
		Int64("bytes", result.TotalSize).
		Int("skipped", len(walk.Diagnostics)).
		Dur("elapsed", time.Since(started)).
		Msg("analysis complete")

	return result, walk.Diagnostics, nil
}
