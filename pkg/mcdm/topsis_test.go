package mcdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOPSISScoresWithinUnitInterval(t *testing.T) {
	scores, err := Scores(MethodTOPSIS, testMatrix, testWeights, testTypes)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for i, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, "alternative %d", i)
		assert.LessOrEqual(t, score, 1.0, "alternative %d", i)
	}
}

func TestTOPSISIdenticalAlternativesScoreZero(t *testing.T) {
	// Every alternative coincides with both ideal points; the 0/0 tie is
	// defined as 0.
	matrix := [][]float64{
		{2, 3},
		{2, 3},
	}
	scores, err := Scores(MethodTOPSIS, matrix, []float64{0.6, 0.4}, []CriterionType{Benefit, Cost})
	require.NoError(t, err)
	assert.Zero(t, scores[0])
	assert.Zero(t, scores[1])
}

func TestTOPSISDominatingAlternativeScoresOne(t *testing.T) {
	matrix := [][]float64{
		{0.9, 1},
		{0.3, 5},
	}
	scores, err := Scores(MethodTOPSIS, matrix, []float64{0.5, 0.5}, []CriterionType{Benefit, Cost})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[0], 1e-9)
	assert.InDelta(t, 0.0, scores[1], 1e-9)
}

func TestTOPSISZeroColumnIsInert(t *testing.T) {
	matrix := [][]float64{
		{0, 4},
		{0, 2},
	}
	scores, err := Scores(MethodTOPSIS, matrix, []float64{0.5, 0.5}, []CriterionType{Benefit, Benefit})
	require.NoError(t, err)
	assert.Greater(t, scores[0], scores[1])
}

func TestTOPSISAndSAWAgreeOnDominance(t *testing.T) {
	matrix := [][]float64{
		{1.0, 10, 1},
		{0.2, 2, 9},
	}
	weights := []float64{0.4, 0.3, 0.3}
	types := []CriterionType{Benefit, Benefit, Cost}

	saw, err := Scores(MethodSAW, matrix, weights, types)
	require.NoError(t, err)
	topsis, err := Scores(MethodTOPSIS, matrix, weights, types)
	require.NoError(t, err)

	assert.Greater(t, saw[0], saw[1])
	assert.Greater(t, topsis[0], topsis[1])
}
