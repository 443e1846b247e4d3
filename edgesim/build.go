package edgesim

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jay11071998/integreat/dataset"
)

// Build computes the edge-similarity matrix of one level.
//
// Algorithm:
//  1. For every unordered entity pair (i,j), collect the replicate
//     positions where both are measured.
//  2. With at least minOverlap common positions, score the pair with
//     Pearson correlation and clamp at MaximumEdge; an undefined
//     correlation (zero variance) becomes Sentinel.
//  3. With fewer common positions, the pair is unscorable: Sentinel.
//
// Both mirror cells are stored, the diagonal is not. Iteration runs in
// ascending entity order, so the result is deterministic.
//
// Complexity: O(E² · R) for E entities and R replicates.
func Build(lvl *dataset.StandardLevel) *Matrix {
	m := New()
	entities := lvl.Entities()
	for a := 0; a < len(entities); a++ {
		for b := a + 1; b < len(entities); b++ {
			i, j := entities[a], entities[b]
			m.Set(i, j, pairSimilarity(lvl.Vectors[i], lvl.Vectors[j]))
		}
	}

	return m
}

// pairSimilarity scores one replicate-vector pair.
func pairSimilarity(x, y []dataset.Intensity) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for r := range x {
		if x[r].Present && y[r].Present {
			xs = append(xs, x[r].Value)
			ys = append(ys, y[r].Value)
		}
	}
	if len(xs) < minOverlap {
		return Sentinel
	}

	rho := stat.Correlation(xs, ys, nil)
	if math.IsNaN(rho) {
		// Zero variance on either side; the pair exists but has no
		// defined correlation.
		return Sentinel
	}
	if rho > MaximumEdge {
		rho = MaximumEdge
	}

	return rho
}
