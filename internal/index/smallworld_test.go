package index

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhaveDebt/smallworld/pkg/vec"
)

// --- Helper Functions ---

func testConfig(m, ef int) Config {
	return Config{M: m, EfSearch: ef, Seed: 42}
}

func randomVec(rng *rand.Rand, dim int) vec.Vector {
	v := make(vec.Vector, dim)
	for i := range v {
		v[i] = rng.Float32()
	}
	return v
}

// --- Functional Tests ---

func TestSmallWorld_DenseIDs(t *testing.T) {
	idx := NewSmallWorld(testConfig(4, 20))
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 50; i++ {
		id, err := idx.Add(randomVec(rng, 16))
		require.NoError(t, err)
		assert.Equal(t, uint64(i), id, "ids must be assigned in insertion order")
	}
	assert.Equal(t, 50, idx.Len())
}

func TestSmallWorld_FirstNodeHasNoNeighbors(t *testing.T) {
	idx := NewSmallWorld(testConfig(8, 20))

	id, err := idx.Add(vec.Vector{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, uint64(0), id)

	assert.Empty(t, idx.nodes[0].neighbors)
}

func TestSmallWorld_NeighborCap(t *testing.T) {
	// Scenario: 10 distinct vectors with M=2; every neighbor list stays <= 2,
	// checked after each insertion.
	idx := NewSmallWorld(testConfig(2, 20))

	for i := 0; i < 10; i++ {
		_, err := idx.Add(vec.Vector{float32(i), float32(i * i)})
		require.NoError(t, err)

		for _, n := range idx.nodes {
			assert.LessOrEqual(t, len(n.neighbors), 2,
				"node %d over connectivity target after insert %d", n.id, i)
		}
	}
}

func TestSmallWorld_FIFOEviction(t *testing.T) {
	// With M=1 every reverse-edge append overflows, and the evicted entry
	// must be the oldest, not the farthest.
	idx := NewSmallWorld(testConfig(1, 20))

	_, err := idx.Add(vec.Vector{0, 0})
	require.NoError(t, err)
	_, err = idx.Add(vec.Vector{1, 0})
	require.NoError(t, err)
	// Node 0 now lists [1].

	_, err = idx.Add(vec.Vector{0.1, 0})
	require.NoError(t, err)

	// Node 2's single nearest is node 0; node 0's list overflowed [1 2]
	// and dropped its oldest edge even though node 1 is farther than 2.
	assert.Equal(t, []uint64{0}, idx.nodes[2].neighbors)
	assert.Equal(t, []uint64{2}, idx.nodes[0].neighbors)
	// Node 1 still holds its now one-directional edge to node 0.
	assert.Equal(t, []uint64{0}, idx.nodes[1].neighbors)
}

func TestSmallWorld_SearchEmptyIndex(t *testing.T) {
	idx := NewSmallWorld(testConfig(8, 20))

	results, err := idx.Search(vec.Vector{1, 2}, 5)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = idx.SearchWithEf(vec.Vector{1, 2}, 5, 100)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSmallWorld_SearchZeroK(t *testing.T) {
	idx := NewSmallWorld(testConfig(8, 20))
	_, err := idx.Add(vec.Vector{1, 2})
	require.NoError(t, err)

	results, err := idx.Search(vec.Vector{1, 2}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSmallWorld_SearchZeroEf(t *testing.T) {
	// ef=0 is valid: the candidate pool can never hold anything.
	idx := NewSmallWorld(testConfig(8, 20))
	for i := 0; i < 5; i++ {
		_, err := idx.Add(vec.Vector{float32(i)})
		require.NoError(t, err)
	}

	results, err := idx.SearchWithEf(vec.Vector{0}, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSmallWorld_SingleVector(t *testing.T) {
	// Scenario: one vector, queried with itself.
	idx := NewSmallWorld(testConfig(8, 20))
	_, err := idx.Add(vec.Vector{1, 2})
	require.NoError(t, err)

	results, err := idx.Search(vec.Vector{1, 2}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint64(0), results[0].ID)
	assert.Equal(t, float32(0), results[0].Distance)
}

func TestSmallWorld_ThreeVectors(t *testing.T) {
	// Scenario: with N=3 every node is a seed, so the exact nearest
	// neighbor is always found.
	idx := NewSmallWorld(testConfig(2, 20))

	for _, v := range []vec.Vector{{0, 0}, {10, 10}, {0.1, 0.1}} {
		_, err := idx.Add(v)
		require.NoError(t, err)
	}

	results, err := idx.SearchWithEf(vec.Vector{0, 0}, 1, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint64(0), results[0].ID)
	assert.Equal(t, float32(0), results[0].Distance)
}

func TestSmallWorld_DuplicateVectors(t *testing.T) {
	idx := NewSmallWorld(testConfig(8, 20))

	v := vec.Vector{3, 1, 4}
	for i := 0; i < 2; i++ {
		_, err := idx.Add(v)
		require.NoError(t, err)
	}

	results, err := idx.Search(v, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, m := range results {
		assert.Equal(t, float32(0), m.Distance)
	}
}

func TestSmallWorld_ResultsSortedAndBounded(t *testing.T) {
	idx := NewSmallWorld(testConfig(4, 20))
	rng := rand.New(rand.NewPCG(7, 9))

	for i := 0; i < 200; i++ {
		_, err := idx.Add(randomVec(rng, 8))
		require.NoError(t, err)
	}

	query := randomVec(rng, 8)
	for _, tc := range []struct{ k, ef int }{
		{k: 10, ef: 20},
		{k: 50, ef: 5},
		{k: 1, ef: 1},
		{k: 200, ef: 20},
	} {
		results, err := idx.SearchWithEf(query, tc.k, tc.ef)
		require.NoError(t, err)

		limit := tc.k
		if tc.ef < limit {
			limit = tc.ef
		}
		assert.LessOrEqual(t, len(results), limit, "k=%d ef=%d", tc.k, tc.ef)

		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].Distance, results[i].Distance,
				"results must be ascending by distance")
		}
	}
}

func TestSmallWorld_DimensionMismatch(t *testing.T) {
	idx := NewSmallWorld(testConfig(8, 20))
	_, err := idx.Add(vec.Vector{1, 2})
	require.NoError(t, err)

	// Insert-time mismatch surfaces inside neighbor selection.
	before := idx.Len()
	_, err = idx.Add(vec.Vector{1, 2, 3})
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)
	assert.Equal(t, before, idx.Len(), "failed insert must not grow the index")

	// Query-time mismatch aborts the search.
	_, err = idx.Search(vec.Vector{1, 2, 3}, 1)
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)
}

func TestSmallWorld_Deterministic(t *testing.T) {
	build := func() *SmallWorld {
		idx := NewSmallWorld(testConfig(4, 20))
		rng := rand.New(rand.NewPCG(11, 13))
		for i := 0; i < 100; i++ {
			_, err := idx.Add(randomVec(rng, 8))
			require.NoError(t, err)
		}
		return idx
	}

	a, b := build(), build()
	require.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.MaxLevel(), b.MaxLevel())
	for i := range a.nodes {
		assert.Equal(t, a.nodes[i].neighbors, b.nodes[i].neighbors, "node %d", i)
	}

	query := vec.Vector{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	ra, err := a.Search(query, 10)
	require.NoError(t, err)
	rb, err := b.Search(query, 10)
	require.NoError(t, err)
	assert.Equal(t, ra, rb)
}

func TestSmallWorld_MaxLevelBookkeeping(t *testing.T) {
	idx := NewSmallWorld(testConfig(4, 20))
	assert.Equal(t, -1, idx.MaxLevel())

	prev := -1
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 200; i++ {
		_, err := idx.Add(randomVec(rng, 4))
		require.NoError(t, err)

		lvl := idx.MaxLevel()
		assert.GreaterOrEqual(t, lvl, 0)
		assert.GreaterOrEqual(t, lvl, prev, "maxLevel must be monotone")
		prev = lvl
	}
}

// --- Recall Accuracy Test ---

func TestSmallWorld_Recall(t *testing.T) {
	// Small enough to run fast, large enough to be interesting.
	count := 1000
	dim := 16
	k := 10
	queries := 50

	naive := NewNaiveIndex()
	sw := NewSmallWorld(Config{M: 16, EfSearch: 100, Seed: 42})

	rng := rand.New(rand.NewPCG(21, 23))
	for i := 0; i < count; i++ {
		v := randomVec(rng, dim)
		_, err := naive.Add(v)
		require.NoError(t, err)
		_, err = sw.Add(v)
		require.NoError(t, err)
	}

	totalRecall := 0.0
	for i := 0; i < queries; i++ {
		query := randomVec(rng, dim)

		truth, err := naive.Search(query, k)
		require.NoError(t, err)
		prediction, err := sw.Search(query, k)
		require.NoError(t, err)

		truthSet := make(map[uint64]bool, len(truth))
		for _, m := range truth {
			truthSet[m.ID] = true
		}

		matches := 0
		for _, m := range prediction {
			if truthSet[m.ID] {
				matches++
			}
		}
		totalRecall += float64(matches) / float64(k)
	}

	avgRecall := totalRecall / float64(queries)
	t.Logf("average recall: %.2f%%", avgRecall*100)

	// The three random seeds plus a bounded pool make this deliberately
	// approximate; demand better-than-random, not exactness.
	if avgRecall < 0.3 {
		t.Errorf("recall too low: got %.2f", avgRecall)
	}
}
