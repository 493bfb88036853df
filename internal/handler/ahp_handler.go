package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/service"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
	"github.com/spk-skripsi/exam-dss-api/pkg/response"
)

type weightDeriver interface {
	DeriveWeights(req dto.AHPWeightsRequest) (*dto.AHPWeightsResponse, error)
}

// AHPHandler exposes pairwise comparison weighting.
type AHPHandler struct {
	service weightDeriver
}

// NewAHPHandler constructs the handler.
func NewAHPHandler(svc *service.AHPService) *AHPHandler {
	return &AHPHandler{service: svc}
}

// Weights godoc
// @Summary Derive criteria weights from a pairwise comparison matrix
// @Description Returns the AHP weight vector with lambda max, consistency index and consistency ratio. Matrices with CR above 0.1 are flagged, not rejected.
// @Tags AHP
// @Accept json
// @Produce json
// @Param payload body dto.AHPWeightsRequest true "Pairwise comparisons"
// @Success 200 {object} response.Envelope
// @Router /ahp/weights [post]
func (h *AHPHandler) Weights(c *gin.Context) {
	var req dto.AHPWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid comparison payload"))
		return
	}
	result, err := h.service.DeriveWeights(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
