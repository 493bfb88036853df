package models

import "github.com/spk-skripsi/exam-dss-api/pkg/mcdm"

// Criterion is one column of the examiner decision matrix.
type Criterion struct {
	Name   string             `json:"name" validate:"required"`
	Weight float64            `json:"weight" validate:"min=0,max=1"`
	Type   mcdm.CriterionType `json:"type" validate:"required,oneof=benefit cost"`
}

// Criterion names recognised by the examiner evaluator. Anything else gets a
// neutral 0.5 column.
const (
	CriterionExpertiseMatch  = "expertise_match"
	CriterionCompetency      = "competency_score"
	CriterionAvailability    = "availability_score"
	CriterionWorkload        = "workload"
	CriterionExperienceYears = "experience_years"
)

// DefaultCriteria returns the weighting used when a request supplies none.
// Expertise fit dominates, workload is the lone cost criterion.
func DefaultCriteria() []Criterion {
	return []Criterion{
		{Name: CriterionExpertiseMatch, Weight: 0.30, Type: mcdm.Benefit},
		{Name: CriterionCompetency, Weight: 0.25, Type: mcdm.Benefit},
		{Name: CriterionAvailability, Weight: 0.20, Type: mcdm.Benefit},
		{Name: CriterionWorkload, Weight: 0.15, Type: mcdm.Cost},
		{Name: CriterionExperienceYears, Weight: 0.10, Type: mcdm.Benefit},
	}
}

// Weights extracts the weight vector of a criteria list in order.
func Weights(criteria []Criterion) []float64 {
	weights := make([]float64, len(criteria))
	for i, c := range criteria {
		weights[i] = c.Weight
	}
	return weights
}

// Types extracts the criterion type vector of a criteria list in order.
func Types(criteria []Criterion) []mcdm.CriterionType {
	types := make([]mcdm.CriterionType, len(criteria))
	for i, c := range criteria {
		types[i] = c.Type
	}
	return types
}
