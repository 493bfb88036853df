package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
)

// AnalysisService derives quality metrics and plain-language recommendations
// from a schedule solution.
type AnalysisService struct {
	scheduler *SchedulerService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnalysisService wires analysis dependencies. The scheduler is used to
// resolve stored solution IDs.
func NewAnalysisService(scheduler *SchedulerService, validate *validator.Validate, logger *zap.Logger) *AnalysisService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{scheduler: scheduler, validator: validate, logger: logger}
}

// Analyze resolves the requested solution and reports on it.
func (s *AnalysisService) Analyze(req dto.AnalyzeScheduleRequest) (*dto.ScheduleAnalysis, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid analysis payload")
	}
	solution := req.Solution
	if solution == nil {
		if req.SolutionID == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "either solution_id or an inline solution is required")
		}
		if s.scheduler == nil {
			return nil, appErrors.Clone(appErrors.ErrInternal, "solution store unavailable")
		}
		stored, err := s.scheduler.GetSolution(req.SolutionID)
		if err != nil {
			return nil, err
		}
		solution = stored
	}
	analysis := AnalyzeSolution(*solution)
	return &analysis, nil
}

// AnalyzeSolution computes metrics and recommendations for a solution.
func AnalyzeSolution(solution models.ScheduleSolution) dto.ScheduleAnalysis {
	stats := solution.Stats
	analysis := dto.ScheduleAnalysis{
		SuccessRate:    stats.SuccessRate,
		AverageScore:   stats.AverageScore,
		MinScore:       stats.MinScore,
		MaxScore:       stats.MaxScore,
		ScoreStdDev:    stats.ScoreStdDev,
		WorkloadSpread: workloadSpread(stats.ExaminerLoad),
	}
	analysis.Recommendations = recommendations(solution, analysis.WorkloadSpread)
	return analysis
}

// workloadSpread is the gap between the most and least loaded examiners in
// this run.
func workloadSpread(load map[int]int) int {
	if len(load) == 0 {
		return 0
	}
	first := true
	var minLoad, maxLoad int
	for _, count := range load {
		if first {
			minLoad, maxLoad = count, count
			first = false
			continue
		}
		if count < minLoad {
			minLoad = count
		}
		if count > maxLoad {
			maxLoad = count
		}
	}
	return maxLoad - minLoad
}

func recommendations(solution models.ScheduleSolution, spread int) []string {
	var recs []string
	stats := solution.Stats

	if stats.SuccessRate < 1 {
		reasonCounts := make(map[models.UnscheduledReason]int)
		for _, item := range solution.Unscheduled {
			reasonCounts[item.Reason]++
		}
		if n := reasonCounts[models.ReasonNoRoomAvailable]; n > 0 {
			recs = append(recs, fmt.Sprintf("%d session(s) lacked a free room; add rooms or spread sessions across more timeslots", n))
		}
		if n := reasonCounts[models.ReasonInsufficientExaminers]; n > 0 {
			recs = append(recs, fmt.Sprintf("%d session(s) could not fill their panel; recruit examiners or lower the required panel size", n))
		}
		if n := reasonCounts[models.ReasonNoTimeslotAvailable]; n > 0 {
			recs = append(recs, fmt.Sprintf("%d session(s) had no timeslot to use; register examination timeslots", n))
		}
		if n := reasonCounts[models.ReasonSupervisorUnavailable]; n > 0 {
			recs = append(recs, fmt.Sprintf("%d session(s) clashed with the supervisor's other defenses; reorder priorities or add timeslots", n))
		}
	}
	if stats.ScheduledCount > 0 && stats.AverageScore < 0.5 {
		recs = append(recs, "average panel score is low; review examiner expertise coverage against thesis fields")
	}
	if spread > 3 {
		recs = append(recs, fmt.Sprintf("examiner load is uneven (spread %d); raise the workload criterion weight to balance assignments", spread))
	}
	if len(recs) == 0 {
		recs = append(recs, "schedule quality is good; no changes recommended")
	}
	return recs
}
