package walker

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/jay11071998/integreat/edgesim"
)

// Align runs the restart walk for one level pair and projects the
// stationary distribution back to per-entity scores.
//
// n is the registry size; the returned vector has length n with NaN
// for entities absent from either level. Symmetric in its matrix
// arguments: Align(E1, E2, V) and Align(E2, E1, V-swapped) score the
// shared diagonal identically because the product graph is the same up
// to vertex relabeling.
func Align(e1, e2 *edgesim.Matrix, v []edgesim.Triple, n int, opts Options) ([]float64, error) {
	if e1 == nil || e2 == nil {
		return nil, ErrNilMatrix
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = math.NaN()
	}

	rows1, rows2 := e1.RowIDs(), e2.RowIDs()
	m := len(rows1) * len(rows2)
	if m == 0 {
		return scores, nil
	}

	// pos maps a product vertex (a-th row of L1, b-th row of L2) to its
	// flat index a*len(rows2)+b.
	pos2 := make(map[int]int, len(rows2))
	for b, j := range rows2 {
		pos2[j] = b
	}

	trans := transition(e1, e2, rows1, rows2, opts.Restart)
	pi := startVector(v, rows1, rows2, m, pos2)

	var err error
	if opts.EigenMaxDim > 0 && m <= opts.EigenMaxDim {
		pi, err = dominantLeftEigenvector(trans)
		if err != nil {
			return nil, err
		}
	} else {
		pi = powerIterate(trans, pi, opts.Steps, opts.Epsilon)
	}

	// Project the diagonal: score(k) = π(k,k) for shared entities.
	for a, i := range rows1 {
		b, shared := pos2[i]
		if !shared {
			continue
		}
		scores[i] = pi[a*len(rows2)+b]
	}

	return scores, nil
}

// edgeWeight reads a usable walk weight: stored, positive and not the
// unscorable sentinel. Everything else contributes no edge.
func edgeWeight(m *edgesim.Matrix, i, j int) float64 {
	w, ok := m.At(i, j)
	if !ok || w <= 0 || w == edgesim.Sentinel {
		return 0
	}

	return w
}

// transition builds the dense row-stochastic product-graph matrix:
// each row carries mass 1-r over its weighted neighbors (uniform when
// the row dangles) plus the r/m restart mass everywhere.
func transition(e1, e2 *edgesim.Matrix, rows1, rows2 []int, restart float64) *mat.Dense {
	m := len(rows1) * len(rows2)
	t := mat.NewDense(m, m, nil)
	jump := restart / float64(m)
	row := make([]float64, m)

	for a, i := range rows1 {
		for b, j := range rows2 {
			u := a*len(rows2) + b
			sum := 0.0
			for ap, ip := range rows1 {
				w1 := edgeWeight(e1, i, ip)
				if w1 == 0 {
					for bp := range rows2 {
						row[ap*len(rows2)+bp] = 0
					}

					continue
				}
				for bp, jp := range rows2 {
					w := w1 * edgeWeight(e2, j, jp)
					row[ap*len(rows2)+bp] = w
					sum += w
				}
			}
			if sum > 0 {
				scale := (1 - restart) / sum
				for vtx := 0; vtx < m; vtx++ {
					t.Set(u, vtx, row[vtx]*scale+jump)
				}
			} else {
				// Dangling vertex: spread the whole walk mass uniformly.
				uniform := (1-restart)/float64(m) + jump
				for vtx := 0; vtx < m; vtx++ {
					t.Set(u, vtx, uniform)
				}
			}
		}
	}

	return t
}

// startVector weights π₀ by the vertex similarities, falling back to
// uniform when none land inside the product graph.
func startVector(v []edgesim.Triple, rows1, rows2 []int, m int, pos2 map[int]int) []float64 {
	pos1 := make(map[int]int, len(rows1))
	for a, i := range rows1 {
		pos1[i] = a
	}

	pi := make([]float64, m)
	sum := 0.0
	for _, t := range v {
		a, ok1 := pos1[t.I]
		b, ok2 := pos2[t.J]
		if !ok1 || !ok2 || t.Sim <= 0 {
			continue
		}
		pi[a*len(rows2)+b] += t.Sim
		sum += t.Sim
	}
	if sum == 0 {
		uniform := 1 / float64(m)
		for i := range pi {
			pi[i] = uniform
		}

		return pi
	}
	for i := range pi {
		pi[i] /= sum
	}

	return pi
}

// powerIterate applies π ← Tᵀπ until the L1 change drops below eps or
// steps runs out. T is row-stochastic, so no renormalization is needed.
func powerIterate(t *mat.Dense, pi []float64, steps int, eps float64) []float64 {
	m := len(pi)
	cur := mat.NewVecDense(m, pi)
	next := mat.NewVecDense(m, nil)
	for s := 0; s < steps; s++ {
		next.MulVec(t.T(), cur)
		diff := 0.0
		for i := 0; i < m; i++ {
			diff += math.Abs(next.AtVec(i) - cur.AtVec(i))
		}
		cur, next = next, cur
		if diff < eps {
			break
		}
	}

	out := make([]float64, m)
	for i := 0; i < m; i++ {
		out[i] = cur.AtVec(i)
	}

	return out
}

// dominantLeftEigenvector returns the stationary distribution as the
// left eigenvector of T for its largest-modulus eigenvalue, scaled to
// sum 1. Only used for small product graphs.
func dominantLeftEigenvector(t *mat.Dense) ([]float64, error) {
	m, _ := t.Dims()
	var tt mat.Dense
	tt.CloneFrom(t.T())

	var eig mat.Eigen
	if ok := eig.Factorize(&tt, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	best, bestMod := 0, 0.0
	for i, v := range vals {
		if mod := cmplx.Abs(v); mod > bestMod {
			best, bestMod = i, mod
		}
	}

	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	out := make([]float64, m)
	sum := 0.0
	for i := 0; i < m; i++ {
		out[i] = real(vecs.At(i, best))
		sum += out[i]
	}
	if sum == 0 {
		return nil, ErrEigenFailed
	}
	// The eigenvector sign is arbitrary; scaling by the sum fixes a
	// probability vector for the Perron root of a stochastic matrix.
	for i := range out {
		out[i] /= sum
	}

	return out, nil
}
