// Command demo builds a small synthetic dataset of clustered vectors,
// indexes it in-process, and prints the ranked neighbors of one query
// aimed at a chosen cluster.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/IhaveDebt/smallworld/internal/index"
	"github.com/IhaveDebt/smallworld/pkg/vec"
)

const (
	dim              = 8
	clusters         = 4
	pointsPerCluster = 50
)

func clusterPoint(rng *rand.Rand, center vec.Vector) vec.Vector {
	v := make(vec.Vector, len(center))
	for i, c := range center {
		v[i] = c + float32(rng.NormFloat64())*0.5
	}
	return v
}

func main() {
	rng := rand.New(rand.NewPCG(1, 2))

	centers := make([]vec.Vector, clusters)
	for i := range centers {
		c := make(vec.Vector, dim)
		for j := range c {
			c[j] = float32(i * 10)
		}
		centers[i] = c
	}

	idx := index.NewSmallWorld(index.DefaultConfig())
	for _, center := range centers {
		for i := 0; i < pointsPerCluster; i++ {
			if _, err := idx.Add(clusterPoint(rng, center)); err != nil {
				slog.Error("insert failed", "error", err)
				os.Exit(1)
			}
		}
	}
	fmt.Printf("indexed %d vectors in %d clusters\n", idx.Len(), clusters)

	// Query near the second cluster's center.
	query := clusterPoint(rng, centers[1])
	matches, err := idx.SearchWithEf(query, 10, 40)
	if err != nil {
		slog.Error("search failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("rank | id   | distance")
	for i, m := range matches {
		fmt.Printf("%4d | %4d | %8.4f\n", i+1, m.ID, m.Distance)
	}
}
