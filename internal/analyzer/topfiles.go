package analyzer

import (
	"container/heap"
	"sort"
)

// DefaultTopFiles is the default capacity of the largest-files selection.
const DefaultTopFiles = 20

// TopFiles retains the largest records seen so far in O(capacity) memory.
// Ties on size keep the earlier-seen record; output is size descending, then encounter order.
type TopFiles struct {
	capacity int
	seq      uint64
	heap     topHeap
}

// NewTopFiles creates a selection of the given capacity (at least 1).
func NewTopFiles(capacity int) *TopFiles {
	if capacity < 1 {
		capacity = 1
	}

	return &TopFiles{
		capacity: capacity,
		heap:     make(topHeap, 0, capacity),
	}
}

// Offer inserts the record if the selection is not full or it is strictly larger than the
// current minimum, evicting that minimum.
func (t *TopFiles) Offer(rec FileRecord) {
	entry := rankedRecord{record: rec, seq: t.seq}
	t.seq++

	if len(t.heap) < t.capacity {
		heap.Push(&t.heap, entry)

		return
	}

	if rec.Size > t.heap[0].record.Size {
		t.heap[0] = entry
		heap.Fix(&t.heap, 0)
	}
}

// Len returns the number of retained records.
func (t *TopFiles) Len() int {
	return len(t.heap)
}

// Sorted returns the retained records, largest first.
func (t *TopFiles) Sorted() []FileRecord {
	ranked := make([]rankedRecord, len(t.heap))
	copy(ranked, t.heap)

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[j].less(ranked[i])
	})

	out := make([]FileRecord, len(ranked))
	for i, r := range ranked {
		out[i] = r.record
	}

	return out
}

type rankedRecord struct {
	record FileRecord
	seq    uint64
}

// less orders by rank: smaller size is lower, and on equal size the later-seen record is lower
// so it is the first to be evicted.
func (r rankedRecord) less(other rankedRecord) bool {
	if r.record.Size != other.record.Size {
		return r.record.Size < other.record.Size
	}

	return r.seq > other.seq
}

// topHeap is a min-heap by rank; the root is the eviction candidate.
type topHeap []rankedRecord

func (h topHeap) Len() int           { return len(h) }
func (h topHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h topHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *topHeap) Push(x any) {
	*h = append(*h, x.(rankedRecord)) //nolint:forcetypeassert // heap.Interface contract
}

func (h *topHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
