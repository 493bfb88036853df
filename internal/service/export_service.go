package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/models"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
	"github.com/spk-skripsi/exam-dss-api/pkg/export"
)

// ExportFormat names a supported download format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.Table) ([]byte, error)
}

// ExportResult is a rendered schedule ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders schedule solutions into downloadable CSV or PDF.
type ExportService struct {
	scheduler *SchedulerService
	csv       csvRenderer
	pdf       pdfRenderer
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(scheduler *SchedulerService, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{scheduler: scheduler, csv: csv, pdf: pdf, logger: logger}
}

// Export resolves a stored solution and renders it in the requested format.
func (s *ExportService) Export(solutionID string, format ExportFormat) (*ExportResult, error) {
	if s.scheduler == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "solution store unavailable")
	}
	solution, err := s.scheduler.GetSolution(solutionID)
	if err != nil {
		return nil, err
	}
	return s.Render(*solution, format)
}

// Render produces the export payload for an in-hand solution.
func (s *ExportService) Render(solution models.ScheduleSolution, format ExportFormat) (*ExportResult, error) {
	table := buildScheduleTable(solution)

	var payload []byte
	var contentType string
	var err error
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(table)
		contentType = "text/csv"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(table)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q: use csv or pdf", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule export")
	}

	timestamp := solution.GeneratedAt
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	filename := fmt.Sprintf("defense_schedule_%s.%s", timestamp.Format("20060102_150405"), format)
	return &ExportResult{Filename: filename, ContentType: contentType, Payload: payload}, nil
}

var scheduleExportColumns = []string{"Session", "Student", "Timeslot", "Room", "Examiners", "Score", "Status"}

func buildScheduleTable(solution models.ScheduleSolution) export.Table {
	rows := make([][]string, 0, len(solution.Assigned)+len(solution.Unscheduled))
	for _, exam := range solution.Assigned {
		ids := make([]string, len(exam.ExaminerIDs))
		for i, id := range exam.ExaminerIDs {
			ids[i] = strconv.Itoa(id)
		}
		rows = append(rows, []string{
			strconv.Itoa(exam.SessionID),
			exam.StudentName,
			strconv.Itoa(exam.TimeslotID),
			strconv.Itoa(exam.RoomID),
			strings.Join(ids, " "),
			fmt.Sprintf("%.3f", exam.Score),
			"scheduled",
		})
	}
	for _, item := range solution.Unscheduled {
		rows = append(rows, []string{
			strconv.Itoa(item.SessionID),
			strconv.Itoa(item.StudentID),
			"", "", "", "",
			string(item.Reason),
		})
	}
	return export.Table{
		Title:   fmt.Sprintf("Thesis Defense Schedule (%s)", solution.Method),
		Columns: scheduleExportColumns,
		Rows:    rows,
	}
}
