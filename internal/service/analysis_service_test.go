package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
	"github.com/spk-skripsi/exam-dss-api/internal/sample"
)

func TestAnalyzeStoredSolution(t *testing.T) {
	scheduler := newTestScheduler()
	generated, err := scheduler.Generate(context.Background(), sample.Request("SAW"))
	require.NoError(t, err)

	analysis := NewAnalysisService(scheduler, nil, zap.NewNop())
	report, err := analysis.Analyze(dto.AnalyzeScheduleRequest{SolutionID: generated.Solution.SolutionID})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, report.SuccessRate, 1e-9)
	assert.Greater(t, report.AverageScore, 0.0)
	require.NotEmpty(t, report.Recommendations)
}

func TestAnalyzeRequiresSolutionOrID(t *testing.T) {
	analysis := NewAnalysisService(newTestScheduler(), nil, zap.NewNop())
	_, err := analysis.Analyze(dto.AnalyzeScheduleRequest{})
	require.Error(t, err)
}

func TestAnalyzeRecommendsForUnscheduledSessions(t *testing.T) {
	solution := models.ScheduleSolution{
		Unscheduled: []models.UnscheduledSession{
			{SessionID: 1, Reason: models.ReasonNoRoomAvailable},
			{SessionID: 2, Reason: models.ReasonInsufficientExaminers},
		},
		Stats: models.ScheduleStats{TotalSessions: 2, UnscheduledCount: 2},
	}

	report := AnalyzeSolution(solution)
	require.Len(t, report.Recommendations, 2)
	joined := strings.Join(report.Recommendations, "\n")
	assert.Contains(t, joined, "room")
	assert.Contains(t, joined, "panel")
}

func TestAnalyzeFlagsUnevenWorkload(t *testing.T) {
	solution := models.ScheduleSolution{
		Assigned: []models.AssignedExam{{SessionID: 1, Score: 0.9}},
		Stats: models.ScheduleStats{
			TotalSessions:  1,
			ScheduledCount: 1,
			SuccessRate:    1,
			AverageScore:   0.9,
			ExaminerLoad:   map[int]int{1: 6, 2: 0},
		},
	}

	report := AnalyzeSolution(solution)
	assert.Equal(t, 6, report.WorkloadSpread)
	joined := strings.Join(report.Recommendations, "\n")
	assert.Contains(t, joined, "workload")
}

func TestAnalyzeCleanScheduleHasSingleRecommendation(t *testing.T) {
	solution := models.ScheduleSolution{
		Assigned: []models.AssignedExam{{SessionID: 1, Score: 0.8}},
		Stats: models.ScheduleStats{
			TotalSessions:  1,
			ScheduledCount: 1,
			SuccessRate:    1,
			AverageScore:   0.8,
			ExaminerLoad:   map[int]int{1: 1, 2: 1},
		},
	}

	report := AnalyzeSolution(solution)
	require.Len(t, report.Recommendations, 1)
	assert.Contains(t, report.Recommendations[0], "no changes")
}
