package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
	"github.com/spk-skripsi/exam-dss-api/internal/sample"
	"github.com/spk-skripsi/exam-dss-api/internal/service"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
)

type schedulerMock struct {
	captured dto.GenerateScheduleRequest
	solution models.ScheduleSolution
	err      error
}

func (m *schedulerMock) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	m.captured = req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.GenerateScheduleResponse{Solution: m.solution}, nil
}

func (m *schedulerMock) GenerateAsync(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleAsyncResponse, error) {
	m.captured = req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.GenerateScheduleAsyncResponse{SolutionID: "queued-1", Status: "queued"}, nil
}

func (m *schedulerMock) GetSolution(id string) (*models.ScheduleSolution, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.solution, nil
}

type analyzerMock struct{}

func (m *analyzerMock) Analyze(req dto.AnalyzeScheduleRequest) (*dto.ScheduleAnalysis, error) {
	return &dto.ScheduleAnalysis{SuccessRate: 1}, nil
}

type exporterMock struct{}

func (m *exporterMock) Export(solutionID string, format service.ExportFormat) (*service.ExportResult, error) {
	if format != service.ExportFormatCSV {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported format")
	}
	return &service.ExportResult{Filename: "schedule.csv", ContentType: "text/csv", Payload: []byte("Session\n")}, nil
}

func generatePayload(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(sample.Request("SAW"))
	require.NoError(t, err)
	return body
}

func postContext(t *testing.T, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestScheduleGenerateSuccess(t *testing.T) {
	mockSvc := &schedulerMock{solution: models.ScheduleSolution{SolutionID: "sol-1", Method: "SAW"}}
	handler := &ScheduleHandler{scheduler: mockSvc}

	c, w := postContext(t, "/schedule/generate", generatePayload(t))
	handler.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mockSvc.captured.Sessions, 5)
	require.Contains(t, w.Body.String(), "sol-1")
}

func TestScheduleGenerateRejectsMalformedJSON(t *testing.T) {
	handler := &ScheduleHandler{scheduler: &schedulerMock{}}
	c, w := postContext(t, "/schedule/generate", []byte(`{"students":`))
	handler.Generate(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleGeneratePropagatesServiceError(t *testing.T) {
	mockSvc := &schedulerMock{err: appErrors.Clone(appErrors.ErrUnsupportedMethod, "unsupported method")}
	handler := &ScheduleHandler{scheduler: mockSvc}

	c, w := postContext(t, "/schedule/generate", generatePayload(t))
	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "UNSUPPORTED_METHOD")
}

func TestScheduleGenerateAsyncAccepted(t *testing.T) {
	handler := &ScheduleHandler{scheduler: &schedulerMock{}}
	c, w := postContext(t, "/schedule/generate-async", generatePayload(t))
	handler.GenerateAsync(c)

	require.Equal(t, http.StatusAccepted, w.Code)
	require.Contains(t, w.Body.String(), "queued-1")
}

func TestScheduleGetSolutionNotFound(t *testing.T) {
	mockSvc := &schedulerMock{err: appErrors.Clone(appErrors.ErrNotFound, "solution not found or expired")}
	handler := &ScheduleHandler{scheduler: mockSvc}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/schedule/solutions/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetSolution(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduleAnalyze(t *testing.T) {
	handler := &ScheduleHandler{analyzer: &analyzerMock{}}
	c, w := postContext(t, "/analyze-schedule", []byte(`{"solution_id":"sol-1"}`))
	handler.Analyze(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "success_rate")
}

func TestScheduleExportDefaultsToCSV(t *testing.T) {
	handler := &ScheduleHandler{exporter: &exporterMock{}}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/schedule/solutions/sol-1/export", nil)
	c.Params = gin.Params{{Key: "id", Value: "sol-1"}}

	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "schedule.csv")
}

func TestScheduleExportRejectsUnknownFormat(t *testing.T) {
	handler := &ScheduleHandler{exporter: &exporterMock{}}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/schedule/solutions/sol-1/export?format=xlsx", nil)
	c.Params = gin.Params{{Key: "id", Value: "sol-1"}}

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
