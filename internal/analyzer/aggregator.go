package analyzer

import (
	"time"
)

// secondsPerDay converts ages to days.
const secondsPerDay = 86400.0

// ExtensionStats is the running count and size of one file type.
type ExtensionStats struct {
	Count     int
	TotalSize int64
}

// AverageSize returns TotalSize / Count, or 0 for an empty entry.
func (s ExtensionStats) AverageSize() int64 {
	if s.Count == 0 {
		return 0
	}

	return s.TotalSize / int64(s.Count)
}

// Aggregator consumes records one at a time and keeps running totals, per-extension statistics,
// the largest files, the oldest/newest extrema and the data for the average age.
// It is not safe for concurrent use: exactly one goroutine owns it during a scan.
type Aggregator struct {
	totalFiles  int
	totalSize   int64
	hiddenFiles int
	maxDepth    int
	extensions  map[string]*ExtensionStats
	top         *TopFiles
	oldest      *FileRecord
	newest      *FileRecord

	// Ages are summed as second offsets from the first record's mtime so the sum stays exact
	// in an int64 for any realistic tree.
	ageBase      int64
	ageOffsetSum int64
}

// NewAggregator creates an aggregator retaining the topN largest files.
func NewAggregator(topN int) *Aggregator {
	return &Aggregator{
		extensions: make(map[string]*ExtensionStats),
		top:        NewTopFiles(topN),
	}
}

// Add folds one record into the running state.
func (a *Aggregator) Add(rec FileRecord) {
	if a.totalFiles == 0 {
		a.ageBase = rec.ModTime.Unix()
	}

	a.totalFiles++
	a.totalSize += rec.Size
	a.ageOffsetSum += rec.ModTime.Unix() - a.ageBase

	key := rec.ExtensionKey()

	stats, ok := a.extensions[key]
	if !ok {
		stats = &ExtensionStats{}
		a.extensions[key] = stats
	}

	stats.Count++
	stats.TotalSize += rec.Size

	a.top.Offer(rec)

	if a.oldest == nil || rec.ModTime.Before(a.oldest.ModTime) {
		oldest := rec
		a.oldest = &oldest
	}

	if a.newest == nil || rec.ModTime.After(a.newest.ModTime) {
		newest := rec
		a.newest = &newest
	}

	if rec.Hidden {
		a.hiddenFiles++
	}

	a.maxDepth = max(a.maxDepth, rec.Depth)
}

// AverageAgeDays returns the mean of (now - mtime) in days, or 0 when no files were seen.
func (a *Aggregator) AverageAgeDays(now time.Time) float64 {
	if a.totalFiles == 0 {
		return 0
	}

	baseAge := now.Sub(time.Unix(a.ageBase, 0)).Seconds()
	meanOffset := float64(a.ageOffsetSum) / float64(a.totalFiles)

	return (baseAge - meanOffset) / secondsPerDay
}

// Extensions returns a copy of the per-extension table.
func (a *Aggregator) Extensions() map[string]ExtensionStats {
	out := make(map[string]ExtensionStats, len(a.extensions))
	for key, stats := range a.extensions {
		out[key] = *stats
	}

	return out
}

// HiddenFiles returns the number of hidden files seen.
func (a *Aggregator) HiddenFiles() int { return a.hiddenFiles }

// Largest returns the retained largest files, largest first.
func (a *Aggregator) Largest() []FileRecord { return a.top.Sorted() }

// MaxDepth returns the deepest file seen.
func (a *Aggregator) MaxDepth() int { return a.maxDepth }

// Newest returns the most recently modified file, or nil when no files were seen.
func (a *Aggregator) Newest() *FileRecord { return a.newest }

// Oldest returns the least recently modified file, or nil when no files were seen.
func (a *Aggregator) Oldest() *FileRecord { return a.oldest }

// TotalFiles returns the number of files seen.
func (a *Aggregator) TotalFiles() int { return a.totalFiles }

// TotalSize returns the summed size of all files seen.
func (a *Aggregator) TotalSize() int64 { return a.totalSize }
