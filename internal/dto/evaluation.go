package dto

import "github.com/spk-skripsi/exam-dss-api/internal/models"

// EvaluateExaminersRequest ranks a candidate pool for one student at one
// timeslot, outside of a full scheduling run.
type EvaluateExaminersRequest struct {
	Student    models.Student     `json:"student" validate:"required"`
	Examiners  []models.Examiner  `json:"examiners" validate:"required,min=1,dive"`
	TimeslotID int                `json:"timeslot_id"`
	Criteria   []models.Criterion `json:"criteria" validate:"omitempty,min=1,dive"`
	Method     string             `json:"method" validate:"omitempty"`
}

// RankedExaminer is one evaluated candidate with its composite score and the
// raw per-criterion values that produced it.
type RankedExaminer struct {
	ExaminerID     int                `json:"examiner_id"`
	Name           string             `json:"name"`
	Score          float64            `json:"score"`
	CriteriaValues map[string]float64 `json:"criteria_values"`
}

// EvaluateExaminersResponse lists candidates in descending score order.
type EvaluateExaminersResponse struct {
	Method  string           `json:"method"`
	Ranking []RankedExaminer `json:"ranking"`
}

// CriteriaResponse lists the active criteria configuration.
type CriteriaResponse struct {
	Criteria []models.Criterion `json:"criteria"`
}

// MethodsResponse lists the supported ranking methods.
type MethodsResponse struct {
	Methods []string `json:"methods"`
}
