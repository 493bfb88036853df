package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
	"github.com/spk-skripsi/exam-dss-api/pkg/mcdm"
)

// AHPService derives criteria weights from pairwise comparison matrices.
type AHPService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAHPService wires AHP dependencies.
func NewAHPService(validate *validator.Validate, logger *zap.Logger) *AHPService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AHPService{validator: validate, logger: logger}
}

// DeriveWeights computes the weight vector for the named criteria. An
// inconsistent matrix is not an error; the response flags it so the caller
// can revise the comparisons.
func (s *AHPService) DeriveWeights(req dto.AHPWeightsRequest) (*dto.AHPWeightsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid pairwise comparison payload")
	}
	if len(req.Comparison) != len(req.Criteria) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("comparison matrix has %d rows for %d criteria", len(req.Comparison), len(req.Criteria)))
	}

	result, err := mcdm.AHPWeights(req.Comparison)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	if !result.Consistent {
		s.logger.Warn("inconsistent pairwise comparison matrix",
			zap.Float64("consistency_ratio", result.ConsistencyRatio),
		)
	}

	weights := make(map[string]float64, len(req.Criteria))
	for i, name := range req.Criteria {
		weights[name] = result.Weights[i]
	}
	return &dto.AHPWeightsResponse{
		Weights:          weights,
		WeightVector:     result.Weights,
		LambdaMax:        result.LambdaMax,
		ConsistencyIndex: result.ConsistencyIndex,
		ConsistencyRatio: result.ConsistencyRatio,
		Consistent:       result.Consistent,
	}, nil
}
