package index

import (
	"sort"

	"github.com/IhaveDebt/smallworld/pkg/vec"
)

// seedCount is the number of random entry points a search starts from.
const seedCount = 3

// Search returns the approximate k nearest neighbors of query using the
// configured EfSearch pool size.
func (s *SmallWorld) Search(query vec.Vector, k int) ([]Match, error) {
	return s.SearchWithEf(query, k, s.config.EfSearch)
}

// SearchWithEf runs a bounded greedy expansion over the neighbor graph.
//
// One sorted slice serves as both frontier and result buffer: candidates
// are appended, the slice is re-sorted ascending by distance, and when it
// grows past ef the current worst entry is dropped from the tail. Seeding
// picks up to three node ids uniformly at random without replacement, then
// expansion walks the queue by position, pushing every neighbor of the
// node at the cursor, until the cursor passes the end. Visited marking is
// permanent for the call: a node evicted by the ef cap never re-enters,
// even if rediscovered through another path. Deliberately approximate.
//
// The result holds at most min(k, ef) matches, ascending by distance; an
// empty index or k <= 0 yields an empty result. A dimensionality mismatch
// between query and any evaluated vector aborts the search.
func (s *SmallWorld) SearchWithEf(query vec.Vector, k, ef int) ([]Match, error) {
	results := []Match{}
	if len(s.nodes) == 0 || k <= 0 {
		return results, nil
	}

	visited := make(map[uint64]bool)
	queue := make([]Match, 0, ef+1)

	push := func(id uint64) error {
		if visited[id] {
			return nil
		}
		visited[id] = true

		d, err := vec.EuclideanDistance(query, s.nodes[id].vector)
		if err != nil {
			return err
		}

		queue = append(queue, Match{ID: id, Distance: d})
		sort.SliceStable(queue, func(i, j int) bool {
			return queue[i].Distance < queue[j].Distance
		})
		if len(queue) > ef {
			// Post-sort, the tail is the actual worst entry.
			queue = queue[:len(queue)-1]
		}
		return nil
	}

	// Random entry points, without replacement.
	seeds := s.rng.Perm(len(s.nodes))
	if len(seeds) > seedCount {
		seeds = seeds[:seedCount]
	}
	for _, seed := range seeds {
		if err := push(uint64(seed)); err != nil {
			return nil, err
		}
	}

	// The queue grows while we scan it; the loop condition re-reads its
	// length, so expansion stops once the cursor passes every survivor.
	for pos := 0; pos < len(queue); pos++ {
		for _, neighborID := range s.nodes[queue[pos].ID].neighbors {
			if err := push(neighborID); err != nil {
				return nil, err
			}
		}
	}

	if k > len(queue) {
		k = len(queue)
	}
	results = append(results, queue[:k]...)
	return results, nil
}
