package rank

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/jay11071998/integreat/ids"
)

// Flatten averages the defined per-pair scores per entity. NaN entries
// are ignored; an entity undefined in every pair stays NaN. The result
// does not depend on the order of the input vectors.
func Flatten(perPair [][]float64) ([]float64, error) {
	if len(perPair) == 0 {
		return nil, nil
	}
	n := len(perPair[0])
	for _, v := range perPair[1:] {
		if len(v) != n {
			return nil, ErrLengthMismatch
		}
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum, defined := 0.0, 0
		for _, v := range perPair {
			if !math.IsNaN(v[i]) {
				sum += v[i]
				defined++
			}
		}
		if defined == 0 {
			out[i] = math.NaN()

			continue
		}
		out[i] = sum / float64(defined)
	}

	return out, nil
}

// Entry is one ranked entity: Rank is 1-based, ascending by score.
type Entry struct {
	Rank   int
	Entity int
	Score  float64
}

// Ranking sorts entities ascending by flat score, the least consistent
// first. NaN scores sort after every number; ties break by
// entity index, so the ranking is deterministic.
func Ranking(scores []float64) []Entry {
	out := make([]Entry, len(scores))
	for i, s := range scores {
		out[i] = Entry{Entity: i, Score: s}
	}
	sort.SliceStable(out, func(a, b int) bool {
		sa, sb := out[a].Score, out[b].Score
		na, nb := math.IsNaN(sa), math.IsNaN(sb)
		switch {
		case na && nb:
			return out[a].Entity < out[b].Entity
		case na:
			return false
		case nb:
			return true
		case sa != sb:
			return sa < sb
		default:
			return out[a].Entity < out[b].Entity
		}
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}

// Accuracy measures how concentrated the truth set sits in the lowest
// ranks:
//
//	1 − (Σ over t of max(0, rank(t) − |T|)) / (Σ_{k=0}^{|T|−1} (N − k))
//
// A truth set occupying exactly the first |T| ranks scores 1.
func Accuracy(ranking []Entry, truth map[int]struct{}) float64 {
	n := len(ranking)
	t := len(truth)
	if t == 0 || n == 0 {
		return math.NaN()
	}

	penalty := 0.0
	for _, e := range ranking {
		if _, ok := truth[e.Entity]; !ok {
			continue
		}
		if over := e.Rank - t; over > 0 {
			penalty += float64(over)
		}
	}
	full := 0.0
	for k := 0; k < t; k++ {
		full += float64(n - k)
	}

	return 1 - penalty/full
}

// ReadTruth parses a newline-separated list of entity names into an
// index set. Blank lines are skipped; unknown names are fatal.
func ReadTruth(r io.Reader, reg *ids.Registry) (map[int]struct{}, error) {
	truth := make(map[int]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		i, ok := reg.Index(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownEntity)
		}
		truth[i] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(truth) == 0 {
		return nil, ErrEmptyTruth
	}

	return truth, nil
}

// Print writes the final table: one line per entity in index order,
// name and score separated by a tab. Unknown scores print as NaN.
func Print(w io.Writer, scores []float64, reg *ids.Registry) error {
	bw := bufio.NewWriter(w)
	for i, s := range scores {
		name, err := reg.Lookup(i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s\t%g\n", name, s); err != nil {
			return err
		}
	}

	return bw.Flush()
}
