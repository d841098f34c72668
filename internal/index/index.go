package index

import "github.com/IhaveDebt/smallworld/pkg/vec"

// Match is one ranked search result.
type Match struct {
	ID       uint64
	Distance float32
}

// VectorIndex : Defines the contract for any vector indexing algorithm.
// (Brute Force, proximity graph, etc.)
// Ids are assigned by the index itself, densely, in insertion order.
type VectorIndex interface {
	Add(v vec.Vector) (uint64, error)
	Search(query vec.Vector, k int) ([]Match, error)
}
