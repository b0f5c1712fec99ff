package analyzer

import "time"

// assemble merges the terminal state of the walk and the three analyzers into one result.
// It runs once, after every consumer has drained, and never touches the filesystem.
func assemble(
	walk WalkSummary,
	agg *Aggregator,
	dups *DuplicateDetector,
	naming *NamingClassifier,
	now time.Time,
	loc *time.Location,
) AnalysisResult {
	largest := agg.Largest()
	entries := make([]FileEntry, len(largest))
	for i, rec := range largest {
		entries[i] = newFileEntry(rec, loc)
	}

	result := AnalysisResult{
		TotalFiles:        agg.TotalFiles(),
		TotalSize:         agg.TotalSize(),
		TotalFolders:      walk.Folders,
		FileTypes:         newFileTypes(agg.Extensions()),
		LargestFiles:      entries,
		AvgFileAgeDays:    agg.AverageAgeDays(now),
		MaxDepth:          max(walk.MaxDepth, agg.MaxDepth()),
		HiddenFileCount:   agg.HiddenFiles(),
		DuplicatePatterns: dups.Groups(),
		NamingStats:       naming.Stats(),
	}

	if oldest := agg.Oldest(); oldest != nil {
		entry := newFileEntry(*oldest, loc)
		result.OldestFile = &entry
	}

	if newest := agg.Newest(); newest != nil {
		entry := newFileEntry(*newest, loc)
		result.NewestFile = &entry
	}

	return result
}
