package walker_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay11071998/integreat/edgesim"
	"github.com/jay11071998/integreat/walker"
)

// starGraph builds a 4-entity matrix where entity 0 carries the
// heaviest degree.
func starGraph() *edgesim.Matrix {
	m := edgesim.New()
	m.Set(0, 1, 0.9)
	m.Set(0, 2, 0.8)
	m.Set(0, 3, 0.7)
	m.Set(1, 2, 0.1)

	return m
}

func identity(idx ...int) []edgesim.Triple {
	out := make([]edgesim.Triple, len(idx))
	for n, i := range idx {
		out[n] = edgesim.Triple{I: i, J: i, Sim: 1}
	}

	return out
}

// TestAlign_IdenticalGraphsConverge: with E1 == E2 and the identity
// vertex map, every shared entity scores positive and the hub of the
// star ranks highest.
func TestAlign_IdenticalGraphsConverge(t *testing.T) {
	g := starGraph()
	scores, err := walker.Align(g, g, identity(0, 1, 2, 3), 4, walker.DefaultOptions())
	require.NoError(t, err)

	best := 0
	for i := 0; i < 4; i++ {
		require.False(t, math.IsNaN(scores[i]), "entity %d is shared", i)
		assert.Positive(t, scores[i], "restart mass keeps every diagonal positive")
		if scores[i] > scores[best] {
			best = i
		}
	}
	assert.Equal(t, 0, best, "the high-degree hub must rank first")
}

// TestAlign_PowerMatchesEigen: power iteration and the direct eigen
// path agree on the stationary distribution (the jump mass makes the
// chain ergodic, so the limit is unique).
func TestAlign_PowerMatchesEigen(t *testing.T) {
	g := starGraph()
	v := identity(0, 1, 2, 3)

	eig, err := walker.Align(g, g, v, 4, walker.DefaultOptions())
	require.NoError(t, err)

	opts := walker.DefaultOptions()
	opts.EigenMaxDim = 0 // force power iteration
	pow, err := walker.Align(g, g, v, 4, opts)
	require.NoError(t, err)

	for i := range eig {
		assert.InDelta(t, eig[i], pow[i], 1e-6, "entity %d", i)
	}
}

// TestAlign_UnsharedEntitiesAreNaN: the projection is defined on the
// diagonal only.
func TestAlign_UnsharedEntitiesAreNaN(t *testing.T) {
	m1, m2 := edgesim.New(), edgesim.New()
	m1.Set(0, 1, 0.5)
	m2.Set(2, 3, 0.5)

	scores, err := walker.Align(m1, m2, nil, 4, walker.DefaultOptions())
	require.NoError(t, err)
	for i := range scores {
		assert.True(t, math.IsNaN(scores[i]), "entity %d is not shared", i)
	}
}

// TestAlign_SentinelAndNegativeEdgesCarryNoMass: unscorable (-5) and
// anti-correlated pairs must not become walk edges; with nothing but
// such entries the walk still converges via the restart mass.
func TestAlign_SentinelAndNegativeEdgesCarryNoMass(t *testing.T) {
	m := edgesim.New()
	m.Set(0, 1, edgesim.Sentinel)
	m.Set(0, 2, -0.9)
	m.Set(1, 2, 0.4)

	scores, err := walker.Align(m, m, identity(0, 1, 2), 3, walker.DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Positive(t, scores[i])
	}
	// 1 and 2 share the only real edge; the isolated 0 gets less mass.
	assert.Less(t, scores[0], scores[1])
	assert.Less(t, scores[0], scores[2])
}

// TestAlign_OptionValidation rejects out-of-range parameters.
func TestAlign_OptionValidation(t *testing.T) {
	g := starGraph()

	opts := walker.DefaultOptions()
	opts.Restart = 0
	_, err := walker.Align(g, g, nil, 4, opts)
	assert.ErrorIs(t, err, walker.ErrBadRestart)

	opts = walker.DefaultOptions()
	opts.Restart = 1
	_, err = walker.Align(g, g, nil, 4, opts)
	assert.ErrorIs(t, err, walker.ErrBadRestart)

	opts = walker.DefaultOptions()
	opts.Steps = 0
	_, err = walker.Align(g, g, nil, 4, opts)
	assert.ErrorIs(t, err, walker.ErrBadSteps)

	_, err = walker.Align(nil, g, nil, 4, walker.DefaultOptions())
	assert.ErrorIs(t, err, walker.ErrNilMatrix)
}

// TestAlign_EmptyMatrices: no rows on either side → all NaN, no error.
func TestAlign_EmptyMatrices(t *testing.T) {
	scores, err := walker.Align(edgesim.New(), edgesim.New(), nil, 2, walker.DefaultOptions())
	require.NoError(t, err)
	for i := range scores {
		assert.True(t, math.IsNaN(scores[i]))
	}
}
