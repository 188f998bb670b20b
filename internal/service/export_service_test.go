package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
	"github.com/noah-isme/park-maintenance-api/pkg/export"
)

type stubLatest struct {
	schedule *models.DaySchedule
	err      error
}

func (s stubLatest) Latest(ctx context.Context, name string) (*models.DaySchedule, bool, error) {
	return s.schedule, false, s.err
}

type failingPDF struct{}

func (failingPDF) Render(data export.Dataset, title string) ([]byte, error) {
	return nil, errors.New("font missing")
}

func exportFixture() *models.DaySchedule {
	return &models.DaySchedule{
		ID:       "sched-1",
		Employee: models.Employee{Name: "Jan de Vries", JobRole: "mechanic", Qualification: "Senior", MaxWorkMinutes: 480},
		Entries: []models.ScheduleEntry{
			{Time: "08:00", Kind: models.EntryKindTask, Activity: "clean", DurationMinutes: 30, Priority: models.TaskPriorityHigh,
				JobRole: "mechanic", Qualification: "Senior", Attraction: "none", Outdoor: "no", Weather: "cloudy"},
			{Time: models.PlaceholderTime, Kind: models.EntryKindBreak, Activity: "break", DurationMinutes: 30},
		},
		TotalDurationMinutes: 30,
		GeneratedAt:          time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC),
	}
}

func TestExportServiceCSV(t *testing.T) {
	svc := NewExportService(stubLatest{schedule: exportFixture()}, nil, nil, nil)

	file, err := svc.Export(context.Background(), "Jan de Vries", "")
	require.NoError(t, err)
	assert.Equal(t, "schedule_Jan_de_Vries.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time;activity;duration;priority;job_role;qualification;attraction;physical_load;outdoor;weather", lines[0])
	assert.Equal(t, "08:00;clean;30;HIGH;mechanic;Senior;none;0;no;cloudy", lines[1])
	assert.Equal(t, "--:--;break;30;;;;;;;", lines[2])
}

func TestExportServicePDF(t *testing.T) {
	svc := NewExportService(stubLatest{schedule: exportFixture()}, nil, nil, nil)

	file, err := svc.Export(context.Background(), "Jan de Vries", "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportServiceErrors(t *testing.T) {
	svc := NewExportService(stubLatest{schedule: exportFixture()}, nil, failingPDF{}, nil)

	_, err := svc.Export(context.Background(), "Jan", "xlsx")
	assert.True(t, errors.Is(err, appErrors.ErrUnsupportedFormat))

	_, err = svc.Export(context.Background(), "Jan", "pdf")
	assert.True(t, errors.Is(err, appErrors.ErrInternal))

	missing := NewExportService(stubLatest{err: appErrors.ErrScheduleNotFound}, nil, nil, nil)
	_, err = missing.Export(context.Background(), "Jan", "csv")
	assert.True(t, errors.Is(err, appErrors.ErrScheduleNotFound))
}

func TestSummarizeSchedule(t *testing.T) {
	summary := SummarizeSchedule(exportFixture())
	assert.Equal(t, 1, summary.TaskCount)
	assert.Equal(t, 30, summary.BreakMinutes)
	assert.Equal(t, 30, summary.TotalDurationMinutes)
	assert.Equal(t, "Jan de Vries", summary.EmployeeName)
}
