package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/sample"
	"github.com/spk-skripsi/exam-dss-api/internal/service"
)

func TestEvaluateExaminersEndpoint(t *testing.T) {
	handler := NewEvaluationHandler(service.NewExaminerEvaluatorService(nil, zap.NewNop()))
	payload, err := json.Marshal(dto.EvaluateExaminersRequest{
		Student:    sample.Students()[0],
		Examiners:  sample.Examiners(),
		TimeslotID: 1,
		Method:     "TOPSIS",
	})
	require.NoError(t, err)

	c, w := postContext(t, "/evaluate-examiners", payload)
	handler.Evaluate(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "\"method\":\"TOPSIS\"")
	require.Contains(t, w.Body.String(), "expertise_match")
}

func TestEvaluateExaminersRejectsEmptyPool(t *testing.T) {
	handler := NewEvaluationHandler(service.NewExaminerEvaluatorService(nil, zap.NewNop()))
	c, w := postContext(t, "/evaluate-examiners", []byte(`{"student":{"id":1,"name":"A","thesis_field":"x"},"examiners":[]}`))
	handler.Evaluate(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCriteriaEndpoints(t *testing.T) {
	handler := NewCriteriaHandler()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/criteria", nil)
	handler.Criteria(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "expertise_match")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/methods", nil)
	handler.Methods(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "TOPSIS")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/sample-data", nil)
	handler.SampleData(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Agus Salim")
}
