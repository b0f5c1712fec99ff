package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// Trailing markers stripped by NormalizeName, in the order they are tried. A copy marker
// (" (N)", then "_copy") and one revision marker (version or plain number) are each removed
// at most once, so "report_copy (1)" reduces to "report" while "invoice_2023_01" keeps its year.
//
//nolint:gochecknoglobals // Compiled once, shared by all detectors
var (
	copyNumberMarker = regexp.MustCompile(`\s\(\d+\)$`) // "report (1)"
	copyMarker       = regexp.MustCompile(`[_-]copy$`)   // "report_copy", "report-copy"
	revisionMarkers  = []*regexp.Regexp{
		regexp.MustCompile(`[_-]v\d+$`), // "report_v2", "report-v10"
		regexp.MustCompile(`[ _-]\d+$`), // "report 2", "report_2", "report-2"
	}
)

// DuplicateGroup is a set of files whose names reduce to the same normalized key.
type DuplicateGroup struct {
	Pattern string   `json:"pattern"`
	Count   int      `json:"count"`
	Files   []string `json:"files"` // member paths, ascending
}

// NormalizeName reduces a base file name to its duplicate-grouping key: the extension is
// dropped, the stem lowercased, trailing copy and revision markers stripped, and whitespace
// collapsed. An empty result means the name is not grouped.
func NormalizeName(name string) string {
	stem, _ := SplitName(name)
	key := strings.ToLower(stem)

	key = trimMarker(key, copyNumberMarker)
	key = trimMarker(key, copyMarker)

	for _, marker := range revisionMarkers {
		if trimmed := trimMarker(key, marker); trimmed != key {
			key = trimmed

			break
		}
	}

	return strings.Join(strings.Fields(key), " ")
}

func trimMarker(key string, marker *regexp.Regexp) string {
	if loc := marker.FindStringIndex(key); loc != nil {
		return key[:loc[0]]
	}

	return key
}

// DuplicateDetector groups files by normalized name. It is not safe for concurrent use.
type DuplicateDetector struct {
	groups map[string][]string
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{groups: make(map[string][]string)}
}

// Add records one file under its normalized key.
func (d *DuplicateDetector) Add(rec FileRecord) {
	key := NormalizeName(rec.Name)
	if key == "" {
		return
	}

	d.groups[key] = append(d.groups[key], rec.Path)
}

// Groups returns every key shared by at least two distinct files, ordered by member count
// descending and then by pattern.
func (d *DuplicateDetector) Groups() []DuplicateGroup {
	out := make([]DuplicateGroup, 0)

	for pattern, paths := range d.groups {
		members := distinctSorted(paths)
		if len(members) < 2 { //nolint:mnd // A group needs two members
			continue
		}

		out = append(out, DuplicateGroup{Pattern: pattern, Count: len(members), Files: members})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Pattern < out[j].Pattern
	})

	return out
}

func distinctSorted(paths []string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}

	return out
}
