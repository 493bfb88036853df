package dto

import "github.com/spk-skripsi/exam-dss-api/internal/models"

// GenerateScheduleRequest carries the full dataset for one scheduling run.
// Criteria and Method are optional; defaults apply when omitted.
type GenerateScheduleRequest struct {
	Students  []models.Student     `json:"students" validate:"required,min=1,dive"`
	Examiners []models.Examiner    `json:"examiners" validate:"required,min=1,dive"`
	Rooms     []models.Room        `json:"rooms" validate:"required,min=1,dive"`
	Timeslots []models.TimeSlot    `json:"timeslots" validate:"omitempty,dive"`
	Sessions  []models.ExamSession `json:"sessions" validate:"required,min=1,dive"`
	Criteria  []models.Criterion   `json:"criteria" validate:"omitempty,min=1,dive"`
	Method    string               `json:"method" validate:"omitempty"`
}

// GenerateScheduleResponse wraps a finished solution.
type GenerateScheduleResponse struct {
	Solution models.ScheduleSolution `json:"solution"`
}

// GenerateScheduleAsyncResponse acknowledges a queued run.
type GenerateScheduleAsyncResponse struct {
	SolutionID string `json:"solution_id"`
	Status     string `json:"status"`
}

// AnalyzeScheduleRequest asks for quality metrics over a solution. Either a
// stored solution ID or an inline solution may be supplied.
type AnalyzeScheduleRequest struct {
	SolutionID string                   `json:"solution_id" validate:"omitempty"`
	Solution   *models.ScheduleSolution `json:"solution" validate:"omitempty"`
}

// ScheduleAnalysis reports aggregate quality of a solution.
type ScheduleAnalysis struct {
	SuccessRate     float64  `json:"success_rate"`
	AverageScore    float64  `json:"average_score"`
	MinScore        float64  `json:"min_score"`
	MaxScore        float64  `json:"max_score"`
	ScoreStdDev     float64  `json:"score_std_dev"`
	WorkloadSpread  int      `json:"workload_spread"`
	Recommendations []string `json:"recommendations"`
}
