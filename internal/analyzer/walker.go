package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/kr/fs"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/joe/dir-insight/pkg/filesystem"
)

// DefaultWorkers is the default number of concurrent stat workers per directory listing.
const DefaultWorkers = 4

// WalkSummary holds the walker's running totals once the traversal is exhausted.
type WalkSummary struct {
	Folders     int // distinct directories visited, root excluded
	MaxDepth    int // deepest file or directory, root children are depth 1
	Diagnostics []EntryError
}

// Walker enumerates every regular file under a root exactly once.
//
// Traversal is depth-first on an explicit stack (kr/fs.Walker), so call-stack usage does not grow
// with tree depth. Directories are entered through symlinks, but only the first time their
// canonical identity is seen. Entry names are listed in ascending order and each listing is
// stat'ed by a bounded worker pool, so record order is deterministic.
type Walker struct {
	fs      filesystem.FileSystem
	workers int
	filter  PathFilter
	hidden  filesystem.HiddenAttributer
	logger  zerolog.Logger
}

// NewWalker creates a walker. A nil filter excludes nothing; workers < 1 means one worker.
func NewWalker(fsys filesystem.FileSystem, workers int, filter PathFilter, logger zerolog.Logger) *Walker {
	if workers < 1 {
		workers = 1
	}

	if filter == nil {
		filter = NewGlobFilter()
	}

	// Query the hidden-attribute capability once; absence is not an error
	hidden, _ := fsys.(filesystem.HiddenAttributer)

	return &Walker{
		fs:      fsys,
		workers: workers,
		filter:  filter,
		hidden:  hidden,
		logger:  logger,
	}
}

// Walk traverses the tree under root, calling emit once per regular file in traversal order.
// It fails with a *RootError when the root cannot be read and with ErrCancelled when ctx is
// done; in both cases the summary is empty. Unreadable entries are skipped and reported in
// WalkSummary.Diagnostics.
//
//nolint:cyclop,funlen // Single traversal loop handles root, directories, files and errors
func (w *Walker) Walk(ctx context.Context, root string, emit func(FileRecord)) (WalkSummary, error) {
	absRoot, err := w.fs.Abs(root)
	if err != nil {
		return WalkSummary{}, &RootError{Path: root, Err: err}
	}

	rootInfo, err := w.fs.Stat(absRoot)
	if err != nil {
		return WalkSummary{}, &RootError{Path: absRoot, Err: err}
	}

	if !rootInfo.IsDir() {
		return WalkSummary{}, &RootError{Path: absRoot, Err: ErrNotDirectory}
	}

	lister := &statLister{ctx: ctx, fs: w.fs, workers: w.workers}
	walker := fs.WalkFS(absRoot, lister)
	visited := make(map[string]struct{})

	var summary WalkSummary

	for walker.Step() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return WalkSummary{}, cancelledError(ctxErr)
		}

		entryPath := walker.Path()
		isRoot := entryPath == absRoot

		if walkErr := walker.Err(); walkErr != nil {
			if isRoot {
				return WalkSummary{}, &RootError{Path: absRoot, Err: walkErr}
			}

			lister.record(EntryError{Path: entryPath, Op: "readdir", Err: walkErr})

			continue
		}

		info := walker.Stat()

		if isRoot {
			visited[w.identity(absRoot, rootInfo)] = struct{}{}

			continue
		}

		rel := relativePath(absRoot, entryPath)
		if w.filter.Excluded(rel) {
			if info.IsDir() {
				walker.SkipDir()
			}

			continue
		}

		depth := strings.Count(rel, "/") + 1

		if info.IsDir() {
			id := w.identity(entryPath, info)
			if _, seen := visited[id]; seen {
				w.logger.Debug().Str("path", entryPath).Msg("skipping already visited directory")
				walker.SkipDir()

				continue
			}

			visited[id] = struct{}{}
			summary.Folders++
			summary.MaxDepth = max(summary.MaxDepth, depth)

			continue
		}

		// Devices, sockets and pipes are not files for the purposes of the summary
		if !info.Mode().IsRegular() {
			continue
		}

		summary.MaxDepth = max(summary.MaxDepth, depth)

		name := info.Name()
		_, ext := SplitName(name)

		emit(FileRecord{
			Path:      entryPath,
			Name:      name,
			Extension: ext,
			Size:      info.Size(),
			ModTime:   info.ModTime(),
			Depth:     depth,
			Hidden:    w.isHidden(entryPath, info),
		})
	}

	// A cancellation during the final listing leaves nothing on the stack to step through
	if ctxErr := ctx.Err(); ctxErr != nil {
		return WalkSummary{}, cancelledError(ctxErr)
	}

	summary.Diagnostics = lister.sortedDiagnostics()

	for _, diag := range summary.Diagnostics {
		w.logger.Debug().Err(diag.Err).Str("path", diag.Path).Str("op", diag.Op).Msg("skipped unreadable entry")
	}

	return summary, nil
}

// identity returns the canonical directory identity, falling back to the path itself when the
// filesystem cannot resolve one.
func (w *Walker) identity(dirPath string, info os.FileInfo) string {
	id, err := w.fs.Identity(dirPath, info)
	if err != nil {
		w.logger.Debug().Err(err).Str("path", dirPath).Msg("no canonical identity, using path")

		return "path:" + dirPath
	}

	return id
}

func (w *Walker) isHidden(entryPath string, info os.FileInfo) bool {
	if isDotHidden(info.Name()) {
		return true
	}

	return w.hidden != nil && w.hidden.HasHiddenAttribute(entryPath, info)
}

// relativePath returns entryPath relative to root with forward slashes.
func relativePath(root, entryPath string) string {
	return strings.TrimLeft(filepath.ToSlash(strings.TrimPrefix(entryPath, root)), "/")
}

// statLister adapts a filesystem.FileSystem to kr/fs.FileSystem. Its Lstat follows links so
// symlinked directories are descended, and ReadDir stats entries on a bounded worker pool.
type statLister struct {
	ctx     context.Context //nolint:containedctx // Scoped to one Walk call
	fs      filesystem.FileSystem
	workers int

	mu          sync.Mutex
	diagnostics []EntryError
}

// Join joins path elements with the underlying filesystem's separator.
func (l *statLister) Join(elem ...string) string {
	return l.fs.Join(elem...)
}

// Lstat stats name, following symbolic links.
func (l *statLister) Lstat(name string) (os.FileInfo, error) {
	return l.fs.Stat(name)
}

// ReadDir lists dir and stats every entry. Entries that cannot be stat'ed are recorded and
// left out; the listing only fails when the directory itself cannot be read or ctx is done.
func (l *statLister) ReadDir(dir string) ([]os.FileInfo, error) {
	names, err := l.fs.ReadDirNames(dir)
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, len(names))

	var group errgroup.Group
	group.SetLimit(l.workers)

	for i, name := range names {
		group.Go(func() error {
			if ctxErr := l.ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			entryPath := l.fs.Join(dir, name)

			info, statErr := l.fs.Stat(entryPath)
			if statErr != nil {
				l.record(EntryError{Path: entryPath, Op: "stat", Err: statErr})

				return nil
			}

			infos[i] = info

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	listed := infos[:0]
	for _, info := range infos {
		if info != nil {
			listed = append(listed, info)
		}
	}

	return listed, nil
}

func (l *statLister) record(diag EntryError) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.diagnostics = append(l.diagnostics, diag)
}

func (l *statLister) sortedDiagnostics() []EntryError {
	l.mu.Lock()
	defer l.mu.Unlock()

	diags := make([]EntryError, len(l.diagnostics))
	copy(diags, l.diagnostics)

	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Path != diags[j].Path {
			return diags[i].Path < diags[j].Path
		}

		return diags[i].Op < diags[j].Op
	})

	return diags
}
