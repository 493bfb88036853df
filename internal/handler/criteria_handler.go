package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
	"github.com/spk-skripsi/exam-dss-api/internal/sample"
	"github.com/spk-skripsi/exam-dss-api/pkg/mcdm"
	"github.com/spk-skripsi/exam-dss-api/pkg/response"
)

// CriteriaHandler serves the static decision configuration and the demo
// dataset.
type CriteriaHandler struct{}

// NewCriteriaHandler constructs the handler.
func NewCriteriaHandler() *CriteriaHandler {
	return &CriteriaHandler{}
}

// Criteria godoc
// @Summary List the default evaluation criteria
// @Tags Configuration
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /criteria [get]
func (h *CriteriaHandler) Criteria(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.CriteriaResponse{Criteria: models.DefaultCriteria()}, nil)
}

// Methods godoc
// @Summary List supported ranking methods
// @Tags Configuration
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /methods [get]
func (h *CriteriaHandler) Methods(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.MethodsResponse{
		Methods: []string{string(mcdm.MethodSAW), string(mcdm.MethodTOPSIS)},
	}, nil)
}

// SampleData godoc
// @Summary Fetch the built-in demo dataset
// @Tags Configuration
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /sample-data [get]
func (h *CriteriaHandler) SampleData(c *gin.Context) {
	response.JSON(c, http.StatusOK, sample.Request(string(mcdm.MethodSAW)), nil)
}
