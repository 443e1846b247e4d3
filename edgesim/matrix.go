package edgesim

import "sort"

// Defaults: single source of truth for the builder's numeric policy.
const (
	// Sentinel marks a pair whose similarity exists but could not be
	// scored. Outside [-1,1] so it is distinguishable from any Pearson
	// value.
	Sentinel = -5.0

	// MaximumEdge is the upper clamp applied to every scored pair.
	MaximumEdge = 1.0

	// minOverlap is the minimum number of replicates where both
	// entities are measured for a pair to be scorable.
	minOverlap = 2
)

// Matrix is a sparse symmetric entity-similarity matrix. Set always
// writes both mirror cells, so M[i][j] == M[j][i] holds by
// construction. Read-only after building; safe to share across
// goroutines then.
type Matrix struct {
	rows map[int]map[int]float64
}

// New returns an empty matrix.
func New() *Matrix {
	return &Matrix{rows: make(map[int]map[int]float64)}
}

// Set writes v at (i,j) and (j,i).
func (m *Matrix) Set(i, j int, v float64) {
	m.set(i, j, v)
	if i != j {
		m.set(j, i, v)
	}
}

func (m *Matrix) set(i, j int, v float64) {
	row, ok := m.rows[i]
	if !ok {
		row = make(map[int]float64)
		m.rows[i] = row
	}
	row[j] = v
}

// At returns the entry at (i,j) and whether it is stored.
func (m *Matrix) At(i, j int) (float64, bool) {
	v, ok := m.rows[i][j]

	return v, ok
}

// Row returns the sparse neighborhood vector of entity i. The returned
// map is the live row; callers must treat it as read-only.
func (m *Matrix) Row(i int) map[int]float64 { return m.rows[i] }

// HasRow reports whether entity i has any stored entry.
func (m *Matrix) HasRow(i int) bool { return len(m.rows[i]) > 0 }

// RowIDs returns the entity indices with stored rows, ascending.
func (m *Matrix) RowIDs() []int {
	out := make([]int, 0, len(m.rows))
	for i := range m.rows {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy. Injection works on clones so the per-level
// matrices stay pristine across level pairs.
func (m *Matrix) Clone() *Matrix {
	c := New()
	for i, row := range m.rows {
		dst := make(map[int]float64, len(row))
		for j, v := range row {
			dst[j] = v
		}
		c.rows[i] = dst
	}

	return c
}
