// Package mcdm implements the multi-criteria decision making methods used by
// the examination scheduling engine: AHP for deriving criterion weights from
// pairwise comparisons, and SAW/TOPSIS for ranking alternatives against a
// weighted decision matrix.
package mcdm

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Method identifies a supported ranking method.
type Method string

const (
	MethodSAW    Method = "SAW"
	MethodTOPSIS Method = "TOPSIS"
)

// CriterionType marks whether higher or lower raw values are preferable.
type CriterionType string

const (
	Benefit CriterionType = "benefit"
	Cost    CriterionType = "cost"
)

// WeightTolerance bounds the accepted deviation of a weight vector from 1.
const WeightTolerance = 1e-6

// ParseMethod normalises a method name, rejecting anything outside the
// supported set.
func ParseMethod(raw string) (Method, error) {
	switch Method(strings.ToUpper(strings.TrimSpace(raw))) {
	case MethodSAW:
		return MethodSAW, nil
	case MethodTOPSIS:
		return MethodTOPSIS, nil
	}
	return "", fmt.Errorf("unsupported method %q: use SAW or TOPSIS", raw)
}

// Scores dispatches to the requested ranking method after validating the
// decision matrix shape against weights and criterion types.
func Scores(method Method, matrix [][]float64, weights []float64, types []CriterionType) ([]float64, error) {
	if err := validateShape(matrix, weights, types); err != nil {
		return nil, err
	}
	switch method {
	case MethodSAW:
		return sawScores(matrix, weights, types), nil
	case MethodTOPSIS:
		return topsisScores(matrix, weights, types), nil
	}
	return nil, fmt.Errorf("unsupported method %q", method)
}

// Rank returns alternative indices ordered by descending score. Equal scores
// keep their input order so that rankings stay deterministic.
func Rank(scores []float64) []int {
	indices := lo.Range(len(scores))
	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})
	return indices
}

// ValidateWeights checks that a weight vector sums to 1 within tolerance and
// contains no negative entries.
func ValidateWeights(weights []float64) error {
	if len(weights) == 0 {
		return fmt.Errorf("weight vector is empty")
	}
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("weight %d is negative (%.4f)", i, w)
		}
	}
	if sum := lo.Sum(weights); math.Abs(sum-1) > WeightTolerance {
		return fmt.Errorf("weights sum to %.6f, expected 1", sum)
	}
	return nil
}

func validateShape(matrix [][]float64, weights []float64, types []CriterionType) error {
	if len(matrix) == 0 {
		return fmt.Errorf("decision matrix has no alternatives")
	}
	n := len(weights)
	if n == 0 {
		return fmt.Errorf("weight vector is empty")
	}
	if len(types) != n {
		return fmt.Errorf("criterion types length %d does not match weights length %d", len(types), n)
	}
	for i, row := range matrix {
		if len(row) != n {
			return fmt.Errorf("row %d has %d columns, expected %d", i, len(row), n)
		}
	}
	return ValidateWeights(weights)
}

func column(matrix [][]float64, j int) []float64 {
	return lo.Map(matrix, func(row []float64, _ int) float64 { return row[j] })
}
