//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package analyzer_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-insight/internal/analyzer"
)

var baseTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func record(name string, size int64, modTime time.Time, depth int) analyzer.FileRecord {
	_, ext := analyzer.SplitName(name)

	return analyzer.FileRecord{
		Path:      "/root/" + name,
		Name:      name,
		Extension: ext,
		Size:      size,
		ModTime:   modTime,
		Depth:     depth,
		Hidden:    name != "" && name[0] == '.',
	}
}

func TestAggregator_EmptyStream(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	agg := analyzer.NewAggregator(analyzer.DefaultTopFiles)

	g.Expect(agg.TotalFiles()).To(BeZero())
	g.Expect(agg.TotalSize()).To(BeZero())
	g.Expect(agg.Oldest()).To(BeNil())
	g.Expect(agg.Newest()).To(BeNil())
	g.Expect(agg.AverageAgeDays(baseTime)).To(BeZero())
	g.Expect(agg.Largest()).To(BeEmpty())
	g.Expect(agg.Extensions()).To(BeEmpty())
}

func TestAggregator_SentinelLookalikeExtensionKeptApart(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	agg := analyzer.NewAggregator(analyzer.DefaultTopFiles)
	agg.Add(record("foo.no-extension", 3, baseTime, 1))
	agg.Add(record("bar", 4, baseTime, 1))

	exts := agg.Extensions()
	g.Expect(exts).To(HaveLen(2))
	g.Expect(exts).To(HaveKeyWithValue(analyzer.NoExtensionKey, analyzer.ExtensionStats{Count: 1, TotalSize: 4}))
	g.Expect(exts).To(HaveKeyWithValue(".no-extension", analyzer.ExtensionStats{Count: 1, TotalSize: 3}))
}

func TestAggregator_TotalsMatchExtensionSums(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	agg := analyzer.NewAggregator(analyzer.DefaultTopFiles)
	agg.Add(record("a.txt", 10, baseTime, 1))
	agg.Add(record("b.TXT", 30, baseTime, 2))
	agg.Add(record("c.go", 5, baseTime, 1))
	agg.Add(record("Makefile", 7, baseTime, 3))

	g.Expect(agg.TotalFiles()).To(Equal(4))
	g.Expect(agg.TotalSize()).To(Equal(int64(52)))
	g.Expect(agg.MaxDepth()).To(Equal(3))

	exts := agg.Extensions()
	g.Expect(exts).To(HaveKeyWithValue("txt", analyzer.ExtensionStats{Count: 2, TotalSize: 40}))
	g.Expect(exts).To(HaveKeyWithValue("go", analyzer.ExtensionStats{Count: 1, TotalSize: 5}))
	g.Expect(exts).To(HaveKeyWithValue(analyzer.NoExtensionKey, analyzer.ExtensionStats{Count: 1, TotalSize: 7}))
	g.Expect(exts["txt"].AverageSize()).To(Equal(int64(20)))

	var count int
	var size int64
	for _, s := range exts {
		count += s.Count
		size += s.TotalSize
	}

	g.Expect(count).To(Equal(agg.TotalFiles()))
	g.Expect(size).To(Equal(agg.TotalSize()))
}

func TestAggregator_ExtremaKeepFirstOnTie(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	agg := analyzer.NewAggregator(analyzer.DefaultTopFiles)
	agg.Add(record("first.txt", 1, baseTime, 1))
	agg.Add(record("second.txt", 1, baseTime, 1))

	g.Expect(agg.Oldest().Name).To(Equal("first.txt"))
	g.Expect(agg.Newest().Name).To(Equal("first.txt"))

	agg.Add(record("older.txt", 1, baseTime.Add(-time.Hour), 1))
	agg.Add(record("newer.txt", 1, baseTime.Add(time.Hour), 1))

	g.Expect(agg.Oldest().Name).To(Equal("older.txt"))
	g.Expect(agg.Newest().Name).To(Equal("newer.txt"))
}

func TestAggregator_AverageAgeDays(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	now := baseTime.Add(10 * 24 * time.Hour)

	agg := analyzer.NewAggregator(analyzer.DefaultTopFiles)
	agg.Add(record("a.txt", 1, now.Add(-2*24*time.Hour), 1))
	agg.Add(record("b.txt", 1, now.Add(-4*24*time.Hour), 1))
	agg.Add(record("c.txt", 1, now.Add(-6*24*time.Hour), 1))

	g.Expect(agg.AverageAgeDays(now)).To(BeNumerically("~", 4.0, 1e-9))
}

func TestAggregator_HiddenCount(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	agg := analyzer.NewAggregator(analyzer.DefaultTopFiles)
	agg.Add(record(".env", 1, baseTime, 1))
	agg.Add(record(".gitignore", 1, baseTime, 1))
	agg.Add(record("visible.txt", 1, baseTime, 1))

	g.Expect(agg.HiddenFiles()).To(Equal(2))
}

func TestAggregator_LargestBoundedByCapacity(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	agg := analyzer.NewAggregator(2)
	for i := 0; i < 5; i++ {
		agg.Add(record(string(rune('a'+i))+".bin", int64(i*100), baseTime, 1))
	}

	largest := agg.Largest()
	g.Expect(largest).To(HaveLen(2))
	g.Expect(largest[0].Size).To(Equal(int64(400)))
	g.Expect(largest[1].Size).To(Equal(int64(300)))
}
