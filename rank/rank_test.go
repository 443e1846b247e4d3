package rank_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay11071998/integreat/ids"
	"github.com/jay11071998/integreat/rank"
)

var nan = math.NaN()

// TestFlatten_AveragesDefinedScores: NaN entries are ignored, not
// averaged in as zero.
func TestFlatten_AveragesDefinedScores(t *testing.T) {
	flat, err := rank.Flatten([][]float64{
		{1.0, nan, 0.5},
		{0.0, nan, 0.7},
		{0.5, nan, nan},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, flat[0], 1e-12)
	assert.True(t, math.IsNaN(flat[1]), "undefined everywhere stays NaN")
	assert.InDelta(t, 0.6, flat[2], 1e-12, "average over defined pairs only")
}

// TestFlatten_OrderInvariant: aggregation must not depend on level-pair
// order.
func TestFlatten_OrderInvariant(t *testing.T) {
	a := []float64{0.1, 0.9}
	b := []float64{0.3, nan}
	ab, err := rank.Flatten([][]float64{a, b})
	require.NoError(t, err)
	ba, err := rank.Flatten([][]float64{b, a})
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

// TestFlatten_LengthMismatch is a programmer-level defect caught early.
func TestFlatten_LengthMismatch(t *testing.T) {
	_, err := rank.Flatten([][]float64{{1}, {1, 2}})
	assert.ErrorIs(t, err, rank.ErrLengthMismatch)
}

// TestRanking_AscendingWithNaNLast: the least consistent entities come
// first; NaN ranks after every number; ties break by index.
func TestRanking_AscendingWithNaNLast(t *testing.T) {
	entries := rank.Ranking([]float64{0.5, nan, -1.0, 0.5})

	assert.Equal(t, 2, entries[0].Entity, "lowest score ranks first")
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 0, entries[1].Entity, "tie broken by entity index")
	assert.Equal(t, 3, entries[2].Entity)
	assert.Equal(t, 1, entries[3].Entity, "NaN ranks last")
	assert.Equal(t, 4, entries[3].Rank)
}

// TestAccuracy_SpecScenario: N=10, |T|=5, truth at ranks {1,2,3,8,10}
// gives 1 − (3+5)/(10+9+8+7+6) = 0.80.
func TestAccuracy_SpecScenario(t *testing.T) {
	// Scores chosen so entities 0..9 rank exactly in index order.
	scores := []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	ranking := rank.Ranking(scores)

	// Truth occupies ranks 1,2,3,8,10 → entities 0,1,2,7,9.
	truth := map[int]struct{}{0: {}, 1: {}, 2: {}, 7: {}, 9: {}}
	assert.InDelta(t, 0.80, rank.Accuracy(ranking, truth), 1e-12)
}

// TestAccuracy_PerfectConcentration: truth in the first |T| ranks → 1.
func TestAccuracy_PerfectConcentration(t *testing.T) {
	ranking := rank.Ranking([]float64{0.1, 0.2, 0.9, 0.8})
	truth := map[int]struct{}{0: {}, 1: {}}
	assert.Equal(t, 1.0, rank.Accuracy(ranking, truth))
}

// TestReadTruth_ParsesAndValidates: names resolve against the registry;
// unknown names and empty files are fatal.
func TestReadTruth_ParsesAndValidates(t *testing.T) {
	reg := ids.NewRegistry()
	_, _ = reg.Intern("e1")
	_, _ = reg.Intern("e2")
	reg.Freeze()

	truth, err := rank.ReadTruth(strings.NewReader("e1\n\ne2\n"), reg)
	require.NoError(t, err)
	assert.Len(t, truth, 2)

	_, err = rank.ReadTruth(strings.NewReader("nope\n"), reg)
	assert.ErrorIs(t, err, rank.ErrUnknownEntity)

	_, err = rank.ReadTruth(strings.NewReader("\n"), reg)
	assert.ErrorIs(t, err, rank.ErrEmptyTruth)
}

// TestPrint_TabSeparatedIndexOrder: one line per entity, NaN literal
// for unknown scores.
func TestPrint_TabSeparatedIndexOrder(t *testing.T) {
	reg := ids.NewRegistry()
	_, _ = reg.Intern("e1")
	_, _ = reg.Intern("e2")
	reg.Freeze()

	var buf bytes.Buffer
	require.NoError(t, rank.Print(&buf, []float64{1, nan}, reg))
	assert.Equal(t, "e1\t1\ne2\tNaN\n", buf.String())
}
