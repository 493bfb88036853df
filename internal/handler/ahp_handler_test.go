package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/service"
)

func TestAHPWeightsEndpoint(t *testing.T) {
	handler := NewAHPHandler(service.NewAHPService(nil, zap.NewNop()))
	payload := []byte(`{
		"criteria": ["expertise_match", "competency_score", "workload"],
		"comparison_matrix": [[1, 2, 4], [0.5, 1, 2], [0.25, 0.5, 1]]
	}`)

	c, w := postContext(t, "/ahp/weights", payload)
	handler.Weights(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "expertise_match")
	require.Contains(t, w.Body.String(), "\"is_consistent\":true")
}

func TestAHPWeightsRejectsShapeMismatch(t *testing.T) {
	handler := NewAHPHandler(service.NewAHPService(nil, zap.NewNop()))
	payload := []byte(`{
		"criteria": ["a", "b"],
		"comparison_matrix": [[1, 2, 4], [0.5, 1, 2], [0.25, 0.5, 1]]
	}`)

	c, w := postContext(t, "/ahp/weights", payload)
	handler.Weights(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
