//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package analyzer_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-insight/internal/analyzer"
)

func names(records []analyzer.FileRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}

	return out
}

func TestTopFiles_KeepsLargestInDescendingOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	top := analyzer.NewTopFiles(3)
	for i, size := range []int64{5, 1, 9, 3, 7, 2} {
		top.Offer(analyzer.FileRecord{Name: string(rune('a' + i)), Size: size})
	}

	g.Expect(top.Len()).To(Equal(3))
	g.Expect(names(top.Sorted())).To(Equal([]string{"c", "e", "a"}))
}

func TestTopFiles_TieKeepsEarlierRecord(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	top := analyzer.NewTopFiles(2)
	top.Offer(analyzer.FileRecord{Name: "first", Size: 10})
	top.Offer(analyzer.FileRecord{Name: "second", Size: 10})
	top.Offer(analyzer.FileRecord{Name: "third", Size: 10})

	// Equal sizes never evict, and the earlier record ranks higher
	g.Expect(names(top.Sorted())).To(Equal([]string{"first", "second"}))
}

func TestTopFiles_EvictsLaterTieFirst(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	top := analyzer.NewTopFiles(2)
	top.Offer(analyzer.FileRecord{Name: "early", Size: 4})
	top.Offer(analyzer.FileRecord{Name: "late", Size: 4})
	top.Offer(analyzer.FileRecord{Name: "big", Size: 8})

	g.Expect(names(top.Sorted())).To(Equal([]string{"big", "early"}))
}

func TestTopFiles_FewerRecordsThanCapacity(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	top := analyzer.NewTopFiles(20)
	top.Offer(analyzer.FileRecord{Name: "only", Size: 1})

	g.Expect(top.Sorted()).To(HaveLen(1))
	g.Expect(analyzer.NewTopFiles(0).Sorted()).To(BeEmpty())
}
