package mcdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testWeights = []float64{0.4, 0.3, 0.3}
	testTypes   = []CriterionType{Benefit, Benefit, Cost}
	testMatrix  = [][]float64{
		{0.8, 5, 2},
		{0.6, 8, 4},
		{0.9, 3, 1},
	}
)

func TestSAWScoresWithinUnitInterval(t *testing.T) {
	scores, err := Scores(MethodSAW, testMatrix, testWeights, testTypes)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for i, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, "alternative %d", i)
		assert.LessOrEqual(t, score, 1.0, "alternative %d", i)
	}
}

func TestSAWSingleAlternativeScoresOne(t *testing.T) {
	// Every column normalises to 1 for a lone alternative, so the score is
	// the weight sum regardless of the weights chosen.
	scores, err := Scores(MethodSAW, [][]float64{{5, 3, 2}}, []float64{0.5, 0.3, 0.2}, testTypes)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[0], 1e-9)
}

func TestSAWZeroColumnNormalisesToZero(t *testing.T) {
	matrix := [][]float64{
		{0, 4},
		{0, 2},
	}
	scores, err := Scores(MethodSAW, matrix, []float64{0.5, 0.5}, []CriterionType{Benefit, Benefit})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, scores[0], 1e-9)
	assert.InDelta(t, 0.25, scores[1], 1e-9)
}

func TestSAWCostColumnWithZeroFallsBackToComplement(t *testing.T) {
	matrix := [][]float64{
		{1, 0},
		{1, 4},
	}
	scores, err := Scores(MethodSAW, matrix, []float64{0.5, 0.5}, []CriterionType{Benefit, Cost})
	require.NoError(t, err)
	// The zero-cost alternative takes the full criterion credit.
	assert.InDelta(t, 1.0, scores[0], 1e-9)
	assert.InDelta(t, 0.5, scores[1], 1e-9)
}

func TestSAWPrefersDominatingAlternative(t *testing.T) {
	matrix := [][]float64{
		{0.9, 8, 1},
		{0.5, 4, 3},
	}
	scores, err := Scores(MethodSAW, matrix, testWeights, testTypes)
	require.NoError(t, err)
	assert.Greater(t, scores[0], scores[1])
}

func TestScoresValidatesShape(t *testing.T) {
	_, err := Scores(MethodSAW, nil, testWeights, testTypes)
	assert.Error(t, err)

	_, err = Scores(MethodSAW, [][]float64{{1, 2}}, testWeights, testTypes)
	assert.Error(t, err, "ragged rows must be rejected")

	_, err = Scores(MethodSAW, testMatrix, []float64{0.5, 0.3, 0.3}, testTypes)
	assert.Error(t, err, "weights must sum to 1")

	_, err = Scores(Method("WP"), testMatrix, testWeights, testTypes)
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	method, err := ParseMethod("SAW")
	require.NoError(t, err)
	assert.Equal(t, MethodSAW, method)

	method, err = ParseMethod("TOPSIS")
	require.NoError(t, err)
	assert.Equal(t, MethodTOPSIS, method)

	_, err = ParseMethod("AHP")
	assert.Error(t, err, "AHP is a weighting method, not a ranking method")
}

func TestRankIsStableOnTies(t *testing.T) {
	assert.Equal(t, []int{2, 0, 1}, Rank([]float64{0.8, 0.6, 0.9}))
	assert.Equal(t, []int{0, 1, 2}, Rank([]float64{0.5, 0.5, 0.5}))
}
