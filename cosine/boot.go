package cosine

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal backs the BCa z-transform; stateless, shared freely.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// bootstrapInterval resamples the zipped dense vectors with
// replacement and returns the BCa (bias-corrected accelerated)
// interval around the observed cosine.
//
// Procedure:
//  1. Densify both rows to length n (missing → 0).
//  2. Draw Steps resamples of n indices; each yields one cosine.
//     A NaN resample follows the NaN policy (zero | propagate).
//  3. Bias correction z0 from the fraction of resamples below the
//     observed value; acceleration a from the jackknife cosines.
//  4. Interval bounds are empirical quantiles at the BCa-adjusted
//     levels; clamped so Lower <= Point <= Upper always holds.
func bootstrapInterval(x, y map[int]float64, observed float64, n int, seed int64, opts Options) Statistic {
	dx := densify(x, n)
	dy := densify(y, n)
	rng := rand.New(rand.NewSource(seed))

	reps := make([]float64, opts.Steps)
	rx := make([]float64, n)
	ry := make([]float64, n)
	propagated := false
	for b := range reps {
		for p := 0; p < n; p++ {
			idx := rng.Intn(n)
			rx[p] = dx[idx]
			ry[p] = dy[idx]
		}
		v := denseCosine(rx, ry)
		if math.IsNaN(v) {
			if opts.NaN == NaNPropagate {
				propagated = true
			}
			v = 0
		}
		reps[b] = v
	}
	if propagated {
		// A degenerate resample poisons the interval under propagate.
		return Statistic{
			Kind:  StatBootstrap,
			Point: observed,
			Lower: math.NaN(),
			Upper: math.NaN(),
			Level: opts.Confidence,
		}
	}

	lower, upper := bcaBounds(observed, reps, jackknife(dx, dy), opts.Confidence)
	if lower > observed {
		lower = observed
	}
	if upper < observed {
		upper = observed
	}

	return Statistic{
		Kind:  StatBootstrap,
		Point: observed,
		Lower: lower,
		Upper: upper,
		Level: opts.Confidence,
	}
}

// jackknife returns the leave-one-out cosines in O(n) total, O(1) per
// position, by peeling each coordinate off the running dot product and
// norms.
func jackknife(x, y []float64) []float64 {
	n := len(x)
	var dot, nx, ny float64
	for i := 0; i < n; i++ {
		dot += x[i] * y[i]
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		d := dot - x[i]*y[i]
		a := nx - x[i]*x[i]
		b := ny - y[i]*y[i]
		if a <= 0 || b <= 0 {
			out[i] = 0

			continue
		}
		out[i] = d / (math.Sqrt(a) * math.Sqrt(b))
	}

	return out
}

// bcaBounds computes the BCa quantile pair for the given replicates.
// When no replicate, or every replicate, lies below the estimate, the
// bounds fall back to plain percentiles. A flat jackknife gives zero
// acceleration, leaving bias-corrected bounds.
func bcaBounds(observed float64, reps, jack []float64, level float64) (float64, float64) {
	sorted := append([]float64(nil), reps...)
	sort.Float64s(sorted)

	alpha := (1 - level) / 2
	below := 0
	for _, v := range reps {
		if v < observed {
			below++
		}
	}
	if below == 0 || below == len(reps) {
		return quantile(sorted, alpha), quantile(sorted, 1-alpha)
	}
	z0 := stdNormal.Quantile(float64(below) / float64(len(reps)))

	// Acceleration from the jackknife skew.
	mean := 0.0
	for _, v := range jack {
		mean += v
	}
	mean /= float64(len(jack))
	var num, den float64
	for _, v := range jack {
		d := mean - v
		num += d * d * d
		den += d * d
	}
	a := 0.0
	if den > 0 {
		a = num / (6 * math.Pow(den, 1.5))
	}

	adjust := func(p float64) float64 {
		z := stdNormal.Quantile(p)
		return stdNormal.CDF(z0 + (z0+z)/(1-a*(z0+z)))
	}

	return quantile(sorted, adjust(alpha)), quantile(sorted, adjust(1-alpha))
}

// quantile reads the empirical p-quantile of an ascending sample.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	idx := int(p * float64(len(sorted)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}

	return sorted[idx]
}

// permutationPValue shuffles the values of y across its own support
// and counts permuted cosines at least as extreme as the observation:
// p = successes / Steps.
func permutationPValue(x, y map[int]float64, observed float64, seed int64, opts Options) Statistic {
	keys := make([]int, 0, len(y))
	for k := range y {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = y[k]
	}

	rng := rand.New(rand.NewSource(seed))
	shuffled := make(map[int]float64, len(keys))
	successes := 0
	for t := 0; t < opts.Steps; t++ {
		rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		for i, k := range keys {
			shuffled[k] = vals[i]
		}
		v, ok := sparseCosine(x, shuffled)
		if !ok {
			v = 0
		}
		if math.Abs(v) >= math.Abs(observed) {
			successes++
		}
	}

	return Statistic{
		Kind: StatPValue,
		P:    float64(successes) / float64(opts.Steps),
	}
}
