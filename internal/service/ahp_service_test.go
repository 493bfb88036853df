package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
)

func TestDeriveWeightsMapsCriterionNames(t *testing.T) {
	svc := NewAHPService(nil, zap.NewNop())
	resp, err := svc.DeriveWeights(dto.AHPWeightsRequest{
		Criteria: []string{"expertise_match", "competency_score", "workload"},
		Comparison: [][]float64{
			{1, 2, 4},
			{0.5, 1, 2},
			{0.25, 0.5, 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Consistent)
	assert.InDelta(t, 0.0, resp.ConsistencyRatio, 1e-6)
	require.Len(t, resp.Weights, 3)
	assert.Greater(t, resp.Weights["expertise_match"], resp.Weights["competency_score"])
	assert.Greater(t, resp.Weights["competency_score"], resp.Weights["workload"])

	var sum float64
	for _, w := range resp.WeightVector {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestDeriveWeightsFlagsInconsistency(t *testing.T) {
	svc := NewAHPService(nil, zap.NewNop())
	resp, err := svc.DeriveWeights(dto.AHPWeightsRequest{
		Criteria: []string{"a", "b", "c"},
		Comparison: [][]float64{
			{1, 9, 1.0 / 9.0},
			{1.0 / 9.0, 1, 9},
			{9, 1.0 / 9.0, 1},
		},
	})
	require.NoError(t, err, "inconsistency is reported, not rejected")
	assert.False(t, resp.Consistent)
	assert.Greater(t, resp.ConsistencyRatio, 0.1)
}

func TestDeriveWeightsValidatesShape(t *testing.T) {
	svc := NewAHPService(nil, zap.NewNop())

	_, err := svc.DeriveWeights(dto.AHPWeightsRequest{
		Criteria:   []string{"a", "b"},
		Comparison: [][]float64{{1, 2, 3}, {0.5, 1, 2}, {1.0 / 3.0, 0.5, 1}},
	})
	require.Error(t, err, "row count must match criteria count")

	_, err = svc.DeriveWeights(dto.AHPWeightsRequest{
		Criteria:   []string{"a", "b"},
		Comparison: [][]float64{{1, -2}, {0.5, 1}},
	})
	require.Error(t, err, "entries must be positive")
}
