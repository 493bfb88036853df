package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
	"github.com/spk-skripsi/exam-dss-api/internal/service"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
	"github.com/spk-skripsi/exam-dss-api/pkg/response"
)

const maxSessionsPerRequest = 512

type scheduleGenerator interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
	GenerateAsync(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleAsyncResponse, error)
	GetSolution(id string) (*models.ScheduleSolution, error)
}

type scheduleAnalyzer interface {
	Analyze(req dto.AnalyzeScheduleRequest) (*dto.ScheduleAnalysis, error)
}

type scheduleExporter interface {
	Export(solutionID string, format service.ExportFormat) (*service.ExportResult, error)
}

// ScheduleHandler exposes schedule generation, retrieval, analysis and
// export endpoints.
type ScheduleHandler struct {
	scheduler scheduleGenerator
	analyzer  scheduleAnalyzer
	exporter  scheduleExporter
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(scheduler *service.SchedulerService, analyzer *service.AnalysisService, exporter *service.ExportService) *ScheduleHandler {
	return &ScheduleHandler{scheduler: scheduler, analyzer: analyzer, exporter: exporter}
}

// Generate godoc
// @Summary Generate a thesis defense schedule
// @Description Runs the greedy engine over the submitted dataset using SAW or TOPSIS for examiner selection.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.GenerateScheduleRequest true "Scheduling dataset"
// @Success 200 {object} response.Envelope
// @Router /schedule/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	if err := validateGenerateRequest(req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.scheduler.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// GenerateAsync godoc
// @Summary Queue schedule generation in the background
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.GenerateScheduleRequest true "Scheduling dataset"
// @Success 202 {object} response.Envelope
// @Router /schedule/generate-async [post]
func (h *ScheduleHandler) GenerateAsync(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	if err := validateGenerateRequest(req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.scheduler.GenerateAsync(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, result)
}

// GetSolution godoc
// @Summary Fetch a stored schedule solution
// @Tags Schedule
// @Produce json
// @Param id path string true "Solution ID"
// @Success 200 {object} response.Envelope
// @Router /schedule/solutions/{id} [get]
func (h *ScheduleHandler) GetSolution(c *gin.Context) {
	solution, err := h.scheduler.GetSolution(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, solution, nil)
}

// Analyze godoc
// @Summary Analyze schedule quality
// @Description Reports success rate, score distribution, workload spread and recommendations for a stored or inline solution.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.AnalyzeScheduleRequest true "Analysis target"
// @Success 200 {object} response.Envelope
// @Router /analyze-schedule [post]
func (h *ScheduleHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid analysis payload"))
		return
	}
	result, err := h.analyzer.Analyze(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Download a schedule solution as CSV or PDF
// @Tags Schedule
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Solution ID"
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Router /schedule/solutions/{id}/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", string(service.ExportFormatCSV))
	result, err := h.exporter.Export(c.Param("id"), service.ExportFormat(format))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.Filename+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}

func validateGenerateRequest(req dto.GenerateScheduleRequest) error {
	if len(req.Sessions) > maxSessionsPerRequest {
		return appErrors.Clone(appErrors.ErrValidation, "sessions exceeds supported limit")
	}
	return nil
}
