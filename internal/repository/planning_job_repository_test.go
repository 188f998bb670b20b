package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

var planningJobRowColumns = []string{"id", "employee_name", "status", "schedule_id", "error_message", "attempts", "created_by", "created_at", "finished_at"}

func TestPlanningJobRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlanningJobRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO planning_jobs")).
		WithArgs(sqlmock.AnyArg(), "Jan", "QUEUED", nil, nil, 0, "planner-1", sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	job := &models.PlanningJob{EmployeeName: "Jan", CreatedBy: "planner-1"}
	require.NoError(t, repo.Create(context.Background(), job))
	require.NotEmpty(t, job.ID)

	rows := sqlmock.NewRows(planningJobRowColumns).
		AddRow(job.ID, "Jan", "QUEUED", nil, nil, 0, "planner-1", time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM planning_jobs WHERE id = ?")).
		WithArgs(job.ID).
		WillReturnRows(rows)

	fetched, err := repo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, job.ID, fetched.ID)
	require.Equal(t, models.PlanningJobQueued, fetched.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanningJobRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlanningJobRepository(db)

	now := time.Now()
	status := models.PlanningJobFinished
	scheduleID := "sched-1"
	attempts := 1
	mock.ExpectExec(regexp.QuoteMeta("UPDATE planning_jobs SET status = ?, schedule_id = ?, attempts = ?, finished_at = ? WHERE id = ?")).
		WithArgs(status, scheduleID, attempts, now, "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "job-1", UpdatePlanningJobParams{
		Status:     &status,
		ScheduleID: &scheduleID,
		Attempts:   &attempts,
		FinishedAt: &now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanningJobRepositoryUpdateNoop(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlanningJobRepository(db)

	require.NoError(t, repo.Update(context.Background(), "job-1", UpdatePlanningJobParams{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanningJobRepositoryListQueued(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlanningJobRepository(db)

	rows := sqlmock.NewRows(planningJobRowColumns).
		AddRow("job-1", "Jan", "QUEUED", nil, nil, 0, "planner-1", time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM planning_jobs WHERE status = 'QUEUED' ORDER BY created_at ASC LIMIT ?")).
		WithArgs(20).
		WillReturnRows(rows)

	jobs, err := repo.ListQueued(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
