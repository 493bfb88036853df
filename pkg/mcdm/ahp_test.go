package mcdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAHPWeightsConsistentMatrix(t *testing.T) {
	// Perfectly consistent: column i dominates column j by a fixed ratio.
	matrix := [][]float64{
		{1, 2, 4},
		{0.5, 1, 2},
		{0.25, 0.5, 1},
	}

	result, err := AHPWeights(matrix)
	require.NoError(t, err)

	var sum float64
	for _, w := range result.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.InDelta(t, 3.0, result.LambdaMax, 1e-6)
	assert.InDelta(t, 0.0, result.ConsistencyRatio, 1e-6)
	assert.True(t, result.Consistent)

	// The derived ordering matches the dominance in the matrix.
	assert.Greater(t, result.Weights[0], result.Weights[1])
	assert.Greater(t, result.Weights[1], result.Weights[2])
}

func TestAHPWeightsInconsistentMatrix(t *testing.T) {
	// Circular preferences: a>b, b>c, c>a, maximally inconsistent.
	matrix := [][]float64{
		{1, 9, 1.0 / 9.0},
		{1.0 / 9.0, 1, 9},
		{9, 1.0 / 9.0, 1},
	}

	result, err := AHPWeights(matrix)
	require.NoError(t, err)
	assert.Greater(t, result.ConsistencyRatio, ConsistencyThreshold)
	assert.False(t, result.Consistent)
}

func TestAHPWeightsSmallOrdersTriviallyConsistent(t *testing.T) {
	for _, matrix := range [][][]float64{
		{{1}},
		{{1, 3}, {1.0 / 3.0, 1}},
	} {
		result, err := AHPWeights(matrix)
		require.NoError(t, err)
		assert.Zero(t, result.ConsistencyRatio)
		assert.True(t, result.Consistent)
	}
}

func TestAHPWeightsRejectsMalformedMatrices(t *testing.T) {
	_, err := AHPWeights(nil)
	assert.Error(t, err)

	_, err = AHPWeights([][]float64{{1, 2}, {0.5, 1, 3}})
	assert.Error(t, err, "non-square matrix must be rejected")

	_, err = AHPWeights([][]float64{{1, -2}, {0.5, 1}})
	assert.Error(t, err, "non-positive entries must be rejected")

	_, err = AHPWeights([][]float64{{1, 0}, {0.5, 1}})
	assert.Error(t, err, "zero entries must be rejected")
}

func TestAHPWeightsLargeOrderClampsRandomIndex(t *testing.T) {
	n := 12
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			matrix[i][j] = 1
		}
	}

	result, err := AHPWeights(matrix)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/float64(n), result.Weights[0], 1e-9)
	assert.True(t, result.Consistent)
}
