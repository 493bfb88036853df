package mcdm

import "github.com/samber/lo"

// sawScores ranks alternatives with Simple Additive Weighting: each criterion
// column is normalised against its extreme, then scores are the weighted sum
// of the normalised rows.
func sawScores(matrix [][]float64, weights []float64, types []CriterionType) []float64 {
	m := len(matrix)
	n := len(weights)
	normalized := make([][]float64, m)
	for i := range normalized {
		normalized[i] = make([]float64, n)
	}

	for j := 0; j < n; j++ {
		col := column(matrix, j)
		maxVal := lo.Max(col)
		minVal := lo.Min(col)

		switch {
		case maxVal == 0:
			// Zero-variance column at zero carries no signal.
			for i := range col {
				normalized[i][j] = 0
			}
		case types[j] == Cost && minVal > 0:
			for i, v := range col {
				normalized[i][j] = minVal / v
			}
		case types[j] == Cost:
			// A zero in a cost column would divide by zero; fall back to
			// the complementary linear scale.
			for i, v := range col {
				normalized[i][j] = 1 - v/maxVal
			}
		default:
			for i, v := range col {
				normalized[i][j] = v / maxVal
			}
		}
	}

	scores := make([]float64, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			scores[i] += weights[j] * normalized[i][j]
		}
	}
	return scores
}
