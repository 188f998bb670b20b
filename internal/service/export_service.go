package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
	"github.com/noah-isme/park-maintenance-api/pkg/export"
)

// Export formats supported for day schedules.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var scheduleExportHeaders = []string{"time", "activity", "duration", "priority", "job_role", "qualification", "attraction", "physical_load", "outdoor", "weather"}

type latestScheduleSource interface {
	Latest(ctx context.Context, name string) (*models.DaySchedule, bool, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportedFile is a rendered attachment.
type ExportedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders an employee's latest day schedule as CSV or PDF.
type ExportService struct {
	schedules latestScheduleSource
	csv       csvRenderer
	pdf       pdfRenderer
	logger    *zap.Logger
}

// NewExportService constructs an ExportService; nil renderers use the defaults.
func NewExportService(schedules latestScheduleSource, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{schedules: schedules, csv: csv, pdf: pdf, logger: logger}
}

// Export renders the latest schedule for name in format.
func (s *ExportService) Export(ctx context.Context, name, format string) (*ExportedFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}

	schedule, _, err := s.schedules.Latest(ctx, name)
	if err != nil {
		return nil, err
	}

	dataset := ScheduleDataset(schedule)
	base := scheduleFileBase(schedule.Employee.Name)

	var (
		data        []byte
		contentType string
	)
	switch format {
	case ExportFormatPDF:
		title := fmt.Sprintf("Day schedule %s (%s)", schedule.Employee.Name, schedule.GeneratedAt.Format("2006-01-02"))
		data, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		data, err = s.csv.Render(dataset)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule")
	}

	s.logger.Debug("schedule exported", zap.String("employee", schedule.Employee.Name), zap.String("format", format), zap.Int("bytes", len(data)))
	return &ExportedFile{Filename: base + "." + format, ContentType: contentType, Data: data}, nil
}

// ScheduleDataset flattens a day schedule into an export table.
func ScheduleDataset(schedule *models.DaySchedule) export.Dataset {
	rows := make([]map[string]string, 0, len(schedule.Entries))
	for _, entry := range schedule.Entries {
		row := map[string]string{
			"time":     entry.Time,
			"activity": entry.Activity,
			"duration": strconv.Itoa(entry.DurationMinutes),
		}
		if entry.IsTask() {
			row["priority"] = string(entry.Priority)
			row["job_role"] = entry.JobRole
			row["qualification"] = entry.Qualification
			row["attraction"] = entry.Attraction
			row["physical_load"] = strconv.Itoa(entry.PhysicalLoad)
			row["outdoor"] = entry.Outdoor
			row["weather"] = entry.Weather
		}
		rows = append(rows, row)
	}

	summary := SummarizeSchedule(schedule)
	return export.Dataset{
		Headers: scheduleExportHeaders,
		Rows:    rows,
		Summary: []string{
			fmt.Sprintf("Employee: %s (%s, %s)", schedule.Employee.Name, schedule.Employee.JobRole, schedule.Employee.Qualification),
			fmt.Sprintf("Task minutes: %d of %d", summary.TotalDurationMinutes, schedule.Employee.MaxWorkMinutes),
			fmt.Sprintf("Break minutes: %d", summary.BreakMinutes),
		},
	}
}

func scheduleFileBase(name string) string {
	return "schedule_" + models.FileKey(name)
}
