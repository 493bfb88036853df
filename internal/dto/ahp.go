package dto

// AHPWeightsRequest carries a pairwise comparison matrix plus the criterion
// names its rows refer to.
type AHPWeightsRequest struct {
	Criteria   []string    `json:"criteria" validate:"required,min=1,dive,required"`
	Comparison [][]float64 `json:"comparison_matrix" validate:"required,min=1"`
}

// AHPWeightsResponse reports derived weights keyed by criterion name along
// with the consistency diagnostics.
type AHPWeightsResponse struct {
	Weights          map[string]float64 `json:"weights"`
	WeightVector     []float64          `json:"weight_vector"`
	LambdaMax        float64            `json:"lambda_max"`
	ConsistencyIndex float64            `json:"consistency_index"`
	ConsistencyRatio float64            `json:"consistency_ratio"`
	Consistent       bool               `json:"is_consistent"`
}
