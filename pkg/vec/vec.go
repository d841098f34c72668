package vec

import (
	"errors"
	"math"
)

type Vector []float32

var ErrDimensionMismatch = errors.New("vector dimensions don't match")

// EuclideanDistance calculates the L2 distance between two vectors.
// Nothing enforces equal dimensionality centrally, so every caller
// has to check the error at the point the distance is computed.
func EuclideanDistance(v1, v2 Vector) (float32, error) {
	if len(v1) != len(v2) {
		return 0, ErrDimensionMismatch
	}

	var sum float32

	// scope for Go compiler to produce SIMD instructions.
	for i := range v1 {
		d := v1[i] - v2[i]
		sum += d * d
	}

	return float32(math.Sqrt(float64(sum))), nil
}
