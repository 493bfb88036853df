package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/models"
	"github.com/spk-skripsi/exam-dss-api/internal/sample"
)

func testSolution(t *testing.T) models.ScheduleSolution {
	t.Helper()
	scheduler := newTestScheduler()
	resp, err := scheduler.Generate(context.Background(), sample.Request("SAW"))
	require.NoError(t, err)
	return resp.Solution
}

func TestExportCSVContainsScheduleRows(t *testing.T) {
	exporter := NewExportService(nil, nil, nil, zap.NewNop())
	result, err := exporter.Render(testSolution(t), ExportFormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	content := string(result.Payload)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 6, "header plus five scheduled sessions")
	assert.Contains(t, lines[0], "Student")
	assert.Contains(t, content, "Agus Salim")
	assert.Contains(t, content, "scheduled")
}

func TestExportCSVIncludesUnscheduledReason(t *testing.T) {
	solution := models.ScheduleSolution{
		Unscheduled: []models.UnscheduledSession{
			{SessionID: 7, StudentID: 7, Reason: models.ReasonNoRoomAvailable},
		},
	}
	exporter := NewExportService(nil, nil, nil, zap.NewNop())
	result, err := exporter.Render(solution, ExportFormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(result.Payload), "no_room_available")
}

func TestExportPDFRendersDocument(t *testing.T) {
	exporter := NewExportService(nil, nil, nil, zap.NewNop())
	result, err := exporter.Render(testSolution(t), ExportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	require.NotEmpty(t, result.Payload)
	assert.Equal(t, "%PDF", string(result.Payload[:4]))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	exporter := NewExportService(nil, nil, nil, zap.NewNop())
	_, err := exporter.Render(testSolution(t), ExportFormat("xlsx"))
	require.Error(t, err)
}

func TestExportResolvesStoredSolution(t *testing.T) {
	scheduler := newTestScheduler()
	resp, err := scheduler.Generate(context.Background(), sample.Request("SAW"))
	require.NoError(t, err)

	exporter := NewExportService(scheduler, nil, nil, zap.NewNop())
	result, err := exporter.Export(resp.Solution.SolutionID, ExportFormatCSV)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Payload)

	_, err = exporter.Export("missing", ExportFormatCSV)
	require.Error(t, err)
}
