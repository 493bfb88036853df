package mcdm

import (
	"fmt"
	"math"
)

// ConsistencyThreshold is Saaty's accepted upper bound for the consistency
// ratio of a pairwise comparison matrix.
const ConsistencyThreshold = 0.1

// randomIndex holds Saaty's random consistency index, indexed by matrix
// order. Orders above ten clamp to the last entry.
var randomIndex = []float64{0, 0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49}

// AHPResult carries the derived weights together with the consistency
// diagnostics of the comparison matrix.
type AHPResult struct {
	Weights          []float64 `json:"weights"`
	LambdaMax        float64   `json:"lambda_max"`
	ConsistencyIndex float64   `json:"consistency_index"`
	ConsistencyRatio float64   `json:"consistency_ratio"`
	Consistent       bool      `json:"is_consistent"`
}

// AHPWeights derives a normalised weight vector from a pairwise comparison
// matrix using the column-normalisation / row-average approximation of the
// principal eigenvector, and reports Saaty's consistency ratio.
func AHPWeights(matrix [][]float64) (AHPResult, error) {
	n := len(matrix)
	if n == 0 {
		return AHPResult{}, fmt.Errorf("comparison matrix is empty")
	}
	for i, row := range matrix {
		if len(row) != n {
			return AHPResult{}, fmt.Errorf("comparison matrix is not square: row %d has %d entries, expected %d", i, len(row), n)
		}
		for j, v := range row {
			if v <= 0 {
				return AHPResult{}, fmt.Errorf("comparison matrix entry [%d][%d] must be positive, got %.4f", i, j, v)
			}
		}
	}

	colSums := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			colSums[j] += matrix[i][j]
		}
	}

	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		var rowSum float64
		for j := 0; j < n; j++ {
			rowSum += matrix[i][j] / colSums[j]
		}
		weights[i] = rowSum / float64(n)
	}

	// lambda_max as the average of (M·w)_i / w_i.
	var lambdaMax float64
	for i := 0; i < n; i++ {
		var weighted float64
		for j := 0; j < n; j++ {
			weighted += matrix[i][j] * weights[j]
		}
		lambdaMax += weighted / weights[i]
	}
	lambdaMax /= float64(n)

	result := AHPResult{Weights: weights, LambdaMax: lambdaMax}
	if n < 3 {
		// 1x1 and 2x2 reciprocal matrices are trivially consistent.
		result.Consistent = true
		return result, nil
	}

	result.ConsistencyIndex = (lambdaMax - float64(n)) / float64(n-1)
	result.ConsistencyRatio = result.ConsistencyIndex / randomIndexFor(n)
	if math.Abs(result.ConsistencyRatio) < 1e-12 {
		result.ConsistencyRatio = 0
	}
	result.Consistent = result.ConsistencyRatio <= ConsistencyThreshold
	return result, nil
}

func randomIndexFor(n int) float64 {
	if n >= len(randomIndex) {
		return randomIndex[len(randomIndex)-1]
	}
	return randomIndex[n]
}
