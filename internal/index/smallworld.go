package index

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/IhaveDebt/smallworld/pkg/vec"
)

// Configuration for the small-world graph hyperparameters.
type Config struct {
	// M : target connectivity; the maximum number of neighbors per node.
	M int

	// EfSearch : size of the candidate pool kept during a search.
	EfSearch int

	// Seed for the index-owned random source (level draws and search
	// seeding). Two indexes built with the same seed and the same
	// insertion order have identical graphs.
	Seed uint64
}

// Default config.
func DefaultConfig() Config {
	return Config{
		M:        8,
		EfSearch: 20,
		Seed:     uint64(time.Now().UnixNano()),
	}
}

// node is a point in the proximity graph. Neighbors are stored as ids
// resolved through the owning index, never as node pointers, and are
// kept in append order: eviction always drops the oldest entry.
type node struct {
	id        uint64
	vector    vec.Vector
	neighbors []uint64
	level     int
}

// SmallWorld is a flat small-world proximity graph index.
//
// Ids are dense: node i lives at nodes[i], so the slice doubles as the
// id-to-node mapping. A per-node level is drawn at insertion time and
// rolled into maxLevel, but it never restricts traversal; search always
// works on the single flat neighbor graph.
//
// The index is not safe for concurrent use. Search consumes the shared
// random source too, so callers need a full mutex, not a read lock.
type SmallWorld struct {
	config Config

	nodes    []*node
	maxLevel int

	rng *rand.Rand
}

// NewSmallWorld creates an empty index. Non-positive M or EfSearch fall
// back to the defaults.
func NewSmallWorld(cfg Config) *SmallWorld {
	def := DefaultConfig()
	if cfg.M <= 0 {
		cfg.M = def.M
	}
	if cfg.EfSearch <= 0 {
		cfg.EfSearch = def.EfSearch
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}

	return &SmallWorld{
		config: cfg,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// randomLevel draws from a geometric distribution: P(level >= l) = (1/2)^l.
// The result only feeds the maxLevel tracker.
func (s *SmallWorld) randomLevel() int {
	lvl := 0
	for s.rng.Float64() < 0.5 {
		lvl++
	}
	return lvl
}

// Len returns the number of indexed vectors.
func (s *SmallWorld) Len() int {
	return len(s.nodes)
}

// MaxLevel returns the highest level drawn so far, -1 for an empty index.
func (s *SmallWorld) MaxLevel() int {
	if len(s.nodes) == 0 {
		return -1
	}
	return s.maxLevel
}

// Add inserts a vector and returns its assigned id (0-based, dense,
// insertion order). The new node is linked to its M nearest existing
// nodes by brute-force ranking; each of those gets a reverse edge, and
// any neighbor list that overflows M loses its oldest entry. The FIFO
// eviction is not distance-aware, and the evicted counterpart edge is
// left in place, so stale one-directional edges can persist.
//
// Dimensionality is not validated up front; a mismatch with an already
// indexed vector surfaces as an error from the distance computation and
// aborts the insert before the graph is touched.
func (s *SmallWorld) Add(v vec.Vector) (uint64, error) {
	id := uint64(len(s.nodes))

	// Rank every existing node by distance to the new vector.
	candidates := make([]Match, 0, len(s.nodes))
	for _, other := range s.nodes {
		d, err := vec.EuclideanDistance(v, other.vector)
		if err != nil {
			return 0, err
		}
		candidates = append(candidates, Match{ID: other.id, Distance: d})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	level := s.randomLevel()
	if level > s.maxLevel {
		s.maxLevel = level
	}

	n := &node{id: id, vector: v, level: level}
	s.nodes = append(s.nodes, n)

	m := s.config.M
	if m > len(candidates) {
		m = len(candidates)
	}

	n.neighbors = make([]uint64, 0, m)
	for _, c := range candidates[:m] {
		n.neighbors = append(n.neighbors, c.ID)

		nb := s.nodes[c.ID]
		nb.neighbors = append(nb.neighbors, id)
		if len(nb.neighbors) > s.config.M {
			// FIFO: drop the oldest edge, whatever its distance.
			nb.neighbors = nb.neighbors[1:]
		}
	}

	return id, nil
}
