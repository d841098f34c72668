package index

import (
	"container/heap"

	"github.com/IhaveDebt/smallworld/pkg/vec"
)

// NaiveIndex is the exact brute-force baseline. It exists as ground
// truth for recall measurements and as the comparison point for the
// graph index benchmarks.
type NaiveIndex struct {
	vectors []vec.Vector
}

func NewNaiveIndex() *NaiveIndex {
	return &NaiveIndex{}
}

func (n *NaiveIndex) Add(v vec.Vector) (uint64, error) {
	id := uint64(len(n.vectors))
	n.vectors = append(n.vectors, v)
	return id, nil
}

func (n *NaiveIndex) Search(query vec.Vector, k int) ([]Match, error) {
	if k <= 0 {
		return []Match{}, nil
	}

	mh := &matchHeap{}
	heap.Init(mh)

	// O(n) scan
	for id, v := range n.vectors {
		d, err := vec.EuclideanDistance(query, v)
		if err != nil {
			return nil, err
		}
		mh.pushWithLimit(Match{ID: uint64(id), Distance: d}, k)
	}

	results := make([]Match, mh.Len())
	for i := len(results) - 1; i >= 0; i-- {
		results[i] = heap.Pop(mh).(Match)
	}

	return results, nil
}
