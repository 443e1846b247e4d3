package cosine

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"log/slog"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jay11071998/integreat/edgesim"
)

// Result is the per-entity outcome of one level-pair alignment: a
// dense length-N score vector (NaN where the entity is not shared) and
// the matching statistics.
type Result struct {
	Scores []float64
	Stats  []Statistic
}

// Align compares the neighborhood vectors of every entity shared by
// the two edge matrices, after injecting the vertex similarities v
// into copies of both. pair names the level pair (order-independent;
// the caller passes the same label for (A,B) and (B,A)) and feeds the
// per-job seed, so a fixed Options.Seed makes the whole result
// deterministic regardless of worker scheduling.
//
// n is the registry size; Scores and Stats have length n.
func Align(ctx context.Context, e1, e2 *edgesim.Matrix, v []edgesim.Triple, n int, pair string, opts Options) (*Result, error) {
	if e1 == nil || e2 == nil {
		return nil, ErrNilMatrix
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	inj1 := edgesim.Inject(e1, v)
	inj2 := edgesim.Inject(e2, v)

	res := &Result{
		Scores: make([]float64, n),
		Stats:  make([]Statistic, n),
	}
	for i := range res.Scores {
		res.Scores[i] = math.NaN()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, k := range inj1.RowIDs() {
		if !inj2.HasRow(k) {
			continue
		}
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, stat := alignVertex(inj1.Row(k), inj2.Row(k), k, n, pair, opts, logger)
			// Distinct indices per job: no lock needed.
			res.Scores[k] = score
			res.Stats[k] = stat

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// alignVertex is one pure per-entity job: observed cosine plus its
// confidence statistic.
func alignVertex(x, y map[int]float64, k, n int, pair string, opts Options, logger *slog.Logger) (float64, Statistic) {
	score, ok := sparseCosine(x, y)
	if !ok {
		logger.Warn("zero-norm neighborhood vector; score reset to 0",
			"entity", k, "pair", pair)
		score = 0
	}

	seed := jobSeed(opts.Seed, pair, k)
	if opts.Permutation {
		return score, permutationPValue(x, y, score, seed, opts)
	}

	return score, bootstrapInterval(x, y, score, n, seed, opts)
}

// sparseCosine computes Σ x[i]·y[i] / (‖x‖·‖y‖) over the union
// support, absent entries read as 0. ok=false on a zero norm. Sums run
// in ascending index order, so the result does not depend on map
// iteration order and is identical with x and y swapped.
func sparseCosine(x, y map[int]float64) (float64, bool) {
	xs := make([]int, 0, len(x))
	for i := range x {
		xs = append(xs, i)
	}
	sort.Ints(xs)
	ys := make([]int, 0, len(y))
	for i := range y {
		ys = append(ys, i)
	}
	sort.Ints(ys)

	var dot, nx, ny float64
	for _, i := range xs {
		xv := x[i]
		nx += xv * xv
		if yv, ok := y[i]; ok {
			dot += xv * yv
		}
	}
	for _, i := range ys {
		ny += y[i] * y[i]
	}
	if nx == 0 || ny == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(nx) * math.Sqrt(ny)), true
}

// denseCosine is the resample kernel over two position-aligned dense
// vectors. NaN on zero norm; the caller applies the NaN policy.
func denseCosine(x, y []float64) float64 {
	var dot, nx, ny float64
	for i := range x {
		dot += x[i] * y[i]
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}
	if nx == 0 || ny == 0 {
		return math.NaN()
	}

	return dot / (math.Sqrt(nx) * math.Sqrt(ny))
}

// densify expands a sparse row to a length-n vector, missing → 0.
func densify(v map[int]float64, n int) []float64 {
	out := make([]float64, n)
	for i, val := range v {
		out[i] = val
	}

	return out
}

// jobSeed hashes (global seed, pair label, entity index) into the
// deterministic per-job RNG seed.
func jobSeed(global int64, pair string, k int) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(global))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(pair))
	binary.LittleEndian.PutUint64(buf[:], uint64(k))
	_, _ = h.Write(buf[:])

	return int64(h.Sum64())
}
