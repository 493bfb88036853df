package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/service"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
	"github.com/spk-skripsi/exam-dss-api/pkg/response"
)

type examinerEvaluator interface {
	Evaluate(req dto.EvaluateExaminersRequest) (*dto.EvaluateExaminersResponse, error)
}

// EvaluationHandler exposes standalone examiner ranking.
type EvaluationHandler struct {
	service examinerEvaluator
}

// NewEvaluationHandler constructs the handler.
func NewEvaluationHandler(svc *service.ExaminerEvaluatorService) *EvaluationHandler {
	return &EvaluationHandler{service: svc}
}

// Evaluate godoc
// @Summary Rank examiner candidates for one student
// @Description Scores a candidate pool against the active criteria with SAW or TOPSIS, outside of a full scheduling run.
// @Tags Evaluation
// @Accept json
// @Produce json
// @Param payload body dto.EvaluateExaminersRequest true "Evaluation payload"
// @Success 200 {object} response.Envelope
// @Router /evaluate-examiners [post]
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateExaminersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid evaluation payload"))
		return
	}
	result, err := h.service.Evaluate(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
