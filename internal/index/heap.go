package index

import "container/heap"

// matchHeap is a priority queue of Matches, ordered by Distance.
// We use a max-heap to keep track of the k smallest distances:
// the root is always the worst of the current top-k.

type matchHeap []Match

func (mh matchHeap) Len() int           { return len(mh) }
func (mh matchHeap) Less(i, j int) bool { return mh[i].Distance > mh[j].Distance }
func (mh matchHeap) Swap(i, j int)      { mh[i], mh[j] = mh[j], mh[i] }

func (mh *matchHeap) Push(x any) {
	*mh = append(*mh, x.(Match)) // use type-assertion.
}

func (mh *matchHeap) Pop() any {
	old := *mh
	n := len(old)
	item := old[n-1]
	*mh = old[0 : n-1]
	return item
}

// Helper to exercise a size limit of k
func (mh *matchHeap) pushWithLimit(item Match, k int) {
	heap.Push(mh, item)
	if len(*mh) > k {
		heap.Pop(mh)
	}
}
