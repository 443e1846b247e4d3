package edgesim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay11071998/integreat/dataset"
	"github.com/jay11071998/integreat/edgesim"
)

// present builds a fully-measured replicate vector.
func present(vals ...float64) []dataset.Intensity {
	out := make([]dataset.Intensity, len(vals))
	for i, v := range vals {
		out[i] = dataset.Intensity{Value: v, Present: true}
	}

	return out
}

// TestBuild_PerfectCorrelation: proportional vectors score 1 (clamped).
func TestBuild_PerfectCorrelation(t *testing.T) {
	lvl := &dataset.StandardLevel{
		Name:       "A",
		Replicates: []string{"r1", "r2", "r3"},
		Vectors: map[int][]dataset.Intensity{
			0: present(1, 2, 3),
			1: present(2, 4, 6),
		},
	}
	m := edgesim.Build(lvl)

	v, ok := m.At(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9, "proportional vectors are perfectly correlated")
}

// TestBuild_AntiCorrelation: inverted vectors score -1.
func TestBuild_AntiCorrelation(t *testing.T) {
	lvl := &dataset.StandardLevel{
		Name:       "A",
		Replicates: []string{"r1", "r2", "r3"},
		Vectors: map[int][]dataset.Intensity{
			0: present(1, 2, 3),
			1: present(3, 2, 1),
		},
	}
	m := edgesim.Build(lvl)

	v, ok := m.At(0, 1)
	require.True(t, ok)
	assert.InDelta(t, -1.0, v, 1e-9)
}

// TestBuild_Symmetry: every stored pair holds E[i,j] == E[j,i].
func TestBuild_Symmetry(t *testing.T) {
	lvl := &dataset.StandardLevel{
		Name:       "A",
		Replicates: []string{"r1", "r2", "r3"},
		Vectors: map[int][]dataset.Intensity{
			0: present(1, 5, 3),
			1: present(2, 2, 9),
			2: present(7, 1, 4),
		},
	}
	m := edgesim.Build(lvl)

	for _, i := range m.RowIDs() {
		for j, v := range m.Row(i) {
			w, ok := m.At(j, i)
			require.True(t, ok, "mirror cell (%d,%d) must exist", j, i)
			assert.Equal(t, v, w, "E[%d,%d] == E[%d,%d]", i, j, j, i)
		}
	}
}

// TestBuild_SentinelOnThinOverlap: fewer than two common replicates
// cannot be scored.
func TestBuild_SentinelOnThinOverlap(t *testing.T) {
	lvl := &dataset.StandardLevel{
		Name:       "A",
		Replicates: []string{"r1", "r2"},
		Vectors: map[int][]dataset.Intensity{
			0: {{Value: 1, Present: true}, {Present: false}},
			1: {{Present: false}, {Value: 2, Present: true}},
		},
	}
	m := edgesim.Build(lvl)

	v, ok := m.At(0, 1)
	require.True(t, ok, "unscorable pairs are stored, not skipped")
	assert.Equal(t, edgesim.Sentinel, v)
}

// TestBuild_SentinelOnZeroVariance: constant vectors have no defined
// Pearson correlation.
func TestBuild_SentinelOnZeroVariance(t *testing.T) {
	lvl := &dataset.StandardLevel{
		Name:       "A",
		Replicates: []string{"r1", "r2"},
		Vectors: map[int][]dataset.Intensity{
			0: present(3, 3),
			1: present(1, 2),
		},
	}
	m := edgesim.Build(lvl)

	v, _ := m.At(0, 1)
	assert.Equal(t, edgesim.Sentinel, v)
}

// TestBuild_DiagonalUntouched: the builder never writes E[i,i].
func TestBuild_DiagonalUntouched(t *testing.T) {
	lvl := &dataset.StandardLevel{
		Name:       "A",
		Replicates: []string{"r1", "r2"},
		Vectors: map[int][]dataset.Intensity{
			0: present(1, 2),
			1: present(2, 4),
		},
	}
	m := edgesim.Build(lvl)

	_, ok := m.At(0, 0)
	assert.False(t, ok, "diagonal is reserved for vertex-similarity injection")
}

// TestInject_SymmetricAndIdempotent covers the injection law:
// Inject(Inject(E,V),V) == Inject(E,V), and the original is untouched.
func TestInject_SymmetricAndIdempotent(t *testing.T) {
	m := edgesim.New()
	m.Set(0, 1, 0.5)

	v := []edgesim.Triple{{I: 0, J: 0, Sim: 1}, {I: 0, J: 1, Sim: 0.9}}
	once := edgesim.Inject(m, v)
	twice := edgesim.Inject(once, v)

	d, ok := once.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1.0, d, "diagonal carries the vertex similarity")

	e, _ := once.At(1, 0)
	assert.Equal(t, 0.9, e, "injection overrides and mirrors")

	orig, _ := m.At(0, 1)
	assert.Equal(t, 0.5, orig, "source matrix must stay pristine")
	_, ok = m.At(0, 0)
	assert.False(t, ok)

	for _, i := range twice.RowIDs() {
		for j, val := range twice.Row(i) {
			w, _ := once.At(i, j)
			assert.Equal(t, w, val, "double injection changes nothing")
		}
	}
}
