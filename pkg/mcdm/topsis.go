package mcdm

import "math"

// topsisScores ranks alternatives by relative closeness to the ideal
// solution: vector-normalise columns, weight them, derive the positive and
// negative ideal points from the criterion directions, then score each
// alternative by D- / (D+ + D-).
func topsisScores(matrix [][]float64, weights []float64, types []CriterionType) []float64 {
	m := len(matrix)
	n := len(weights)

	norms := make([]float64, n)
	for j := 0; j < n; j++ {
		var sumSquares float64
		for i := 0; i < m; i++ {
			sumSquares += matrix[i][j] * matrix[i][j]
		}
		norms[j] = math.Sqrt(sumSquares)
		if norms[j] == 0 {
			norms[j] = 1
		}
	}

	weighted := make([][]float64, m)
	for i := 0; i < m; i++ {
		weighted[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			weighted[i][j] = matrix[i][j] / norms[j] * weights[j]
		}
	}

	ideal := make([]float64, n)
	negative := make([]float64, n)
	for j := 0; j < n; j++ {
		col := column(weighted, j)
		maxVal, minVal := col[0], col[0]
		for _, v := range col[1:] {
			maxVal = math.Max(maxVal, v)
			minVal = math.Min(minVal, v)
		}
		if types[j] == Cost {
			ideal[j], negative[j] = minVal, maxVal
		} else {
			ideal[j], negative[j] = maxVal, minVal
		}
	}

	scores := make([]float64, m)
	for i := 0; i < m; i++ {
		var dPlus, dMinus float64
		for j := 0; j < n; j++ {
			dPlus += (weighted[i][j] - ideal[j]) * (weighted[i][j] - ideal[j])
			dMinus += (weighted[i][j] - negative[j]) * (weighted[i][j] - negative[j])
		}
		dPlus = math.Sqrt(dPlus)
		dMinus = math.Sqrt(dMinus)
		if dPlus+dMinus == 0 {
			// Degenerate case: the alternative coincides with both ideals.
			scores[i] = 0
			continue
		}
		scores[i] = dMinus / (dPlus + dMinus)
	}
	return scores
}
