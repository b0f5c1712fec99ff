package analyzer

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
)

// TimestampLayout is the fixed format of every serialized modification time.
const TimestampLayout = "2006-01-02 15:04:05"

// AnalysisResult is the immutable summary of one analysis. Its JSON form is deterministic for a
// given tree and analysis time.
type AnalysisResult struct {
	TotalFiles        int              `json:"total_files"`
	TotalSize         int64            `json:"total_size"`
	TotalFolders      int              `json:"total_folders"`
	FileTypes         FileTypes        `json:"file_types"`
	LargestFiles      []FileEntry      `json:"largest_files"`
	OldestFile        *FileEntry       `json:"oldest_file"`
	NewestFile        *FileEntry       `json:"newest_file"`
	AvgFileAgeDays    float64          `json:"avg_file_age_days"`
	MaxDepth          int              `json:"max_depth"`
	HiddenFileCount   int              `json:"hidden_file_count"`
	DuplicatePatterns []DuplicateGroup `json:"duplicate_patterns"`
	NamingStats       NamingStats      `json:"naming_stats"`
}

// JSON encodes the result compactly.
func (r AnalysisResult) JSON() ([]byte, error) {
	data, err := sonic.ConfigStd.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis result: %w", err)
	}

	return data, nil
}

// IndentedJSON encodes the result with two-space indentation.
func (r AnalysisResult) IndentedJSON() ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis result: %w", err)
	}

	return data, nil
}

// FileEntry is the serialized form of a FileRecord.
type FileEntry struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Size      int64  `json:"size"`
	Modified  string `json:"modified"`
	Depth     int    `json:"depth"`
}

// ModifiedTime parses Modified in the given location.
func (e FileEntry) ModifiedTime(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, e.Modified, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid modified timestamp %q: %w", e.Modified, err)
	}

	return t, nil
}

func newFileEntry(rec FileRecord, loc *time.Location) FileEntry {
	return FileEntry{
		Path:      rec.Path,
		Name:      rec.Name,
		Extension: rec.Extension,
		Size:      rec.Size,
		Modified:  rec.ModTime.In(loc).Format(TimestampLayout),
		Depth:     rec.Depth,
	}
}

// FileTypeInfo is the serialized form of ExtensionStats.
type FileTypeInfo struct {
	Count       int   `json:"count"`
	TotalSize   int64 `json:"total_size"`
	AverageSize int64 `json:"average_size"`
}

// FileTypeEntry pairs an extension key with its statistics.
type FileTypeEntry struct {
	Extension string
	FileTypeInfo
}

// FileTypes is the extension → statistics mapping, kept in reporting order: count descending,
// then extension ascending. It encodes as a JSON object in that order.
type FileTypes []FileTypeEntry

// Lookup returns the statistics for one extension key.
func (t FileTypes) Lookup(ext string) (FileTypeInfo, bool) {
	for _, entry := range t {
		if entry.Extension == ext {
			return entry.FileTypeInfo, true
		}
	}

	return FileTypeInfo{}, false
}

// MarshalJSON encodes the entries as one JSON object, preserving order.
func (t FileTypes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, entry := range t {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := sonic.ConfigStd.Marshal(entry.Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to encode file type %q: %w", entry.Extension, err)
		}

		value, err := sonic.ConfigStd.Marshal(entry.FileTypeInfo)
		if err != nil {
			return nil, fmt.Errorf("failed to encode file type %q: %w", entry.Extension, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func newFileTypes(stats map[string]ExtensionStats) FileTypes {
	out := make(FileTypes, 0, len(stats))
	for ext, s := range stats {
		out = append(out, FileTypeEntry{
			Extension: ext,
			FileTypeInfo: FileTypeInfo{
				Count:       s.Count,
				TotalSize:   s.TotalSize,
				AverageSize: s.AverageSize(),
			},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Extension < out[j].Extension
	})

	return out
}
