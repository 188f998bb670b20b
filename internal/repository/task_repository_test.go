package repository

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/park-maintenance-api/internal/models"
	"github.com/noah-isme/park-maintenance-api/pkg/config"
	"github.com/noah-isme/park-maintenance-api/pkg/database"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var taskRowColumns = []string{"id", "description", "duration_minutes", "priority", "job_role", "qualification", "physical_load", "attraction", "outdoor"}

func TestTaskRepositoryListForEmployee(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTaskRepository(db)

	rows := sqlmock.NewRows(taskRowColumns).
		AddRow("t-1", "check brakes", 30, "HIGH", "mechanic", "Senior", 10, "Python", false).
		AddRow("t-2", "paint fence", 60, "LOW", "mechanic", "Senior", 20, nil, true)
	mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance_tasks\nWHERE job_role = ? AND qualification = ?")).
		WithArgs("mechanic", "Senior").
		WillReturnRows(rows)

	tasks, err := repo.ListForEmployee(context.Background(), "mechanic", "Senior")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, models.TaskPriorityHigh, tasks[0].Priority)
	require.NotNil(t, tasks[0].Attraction)
	assert.Equal(t, "Python", *tasks[0].Attraction)
	assert.Nil(t, tasks[1].Attraction)
	assert.True(t, tasks[1].Outdoor)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryListForEmployeeEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTaskRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance_tasks")).
		WithArgs("cleaner", "Intern").
		WillReturnRows(sqlmock.NewRows(taskRowColumns))

	tasks, err := repo.ListForEmployee(context.Background(), "cleaner", "Intern")
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepositoryListForEmployeeError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTaskRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance_tasks")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListForEmployee(context.Background(), "mechanic", "Senior")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list maintenance tasks")
}

func TestTaskRepositoryOrderingOnSQLite(t *testing.T) {
	db, err := database.Open(config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, database.EnsureSchema(context.Background(), db))
	_, err = db.Exec(`INSERT INTO maintenance_tasks (id, description, duration_minutes, priority, job_role, qualification, physical_load, attraction, outdoor) VALUES
		('a', 'sweep queue area', 20, 'LOW', 'mechanic', 'Senior', 5, NULL, 1),
		('b', 'replace chain link', 90, 'HIGH', 'mechanic', 'Senior', 25, 'Baron', 0),
		('c', 'inspect harness', 15, 'HIGH', 'mechanic', 'Senior', 5, 'Baron', 0),
		('d', 'oil gears', 45, 'MEDIUM', 'mechanic', 'Senior', 10, NULL, 0),
		('e', 'tighten bolts', 10, 'HIGH', 'mechanic', 'Junior', 5, NULL, 0)`)
	require.NoError(t, err)

	repo := NewTaskRepository(db)
	tasks, err := repo.ListForEmployee(context.Background(), "mechanic", "Senior")
	require.NoError(t, err)

	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids)
	assert.True(t, tasks[3].Outdoor)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestTaskRepositoryBulkUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO maintenance_tasks").
		WithArgs("t-1", "check brakes", 30, "HIGH", "mechanic", "Senior", 10, sqlmock.AnyArg(), false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO maintenance_tasks").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.BulkUpsert(context.Background(), []models.MaintenanceTask{
		{ID: "t-1", Description: "check brakes", DurationMinutes: 30, Priority: models.TaskPriorityHigh, JobRole: "mechanic", Qualification: "Senior", PhysicalLoad: 10},
		{ID: "t-2", Description: "paint fence", DurationMinutes: -5},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "t-2")
	require.NoError(t, mock.ExpectationsWereMet())

	require.NoError(t, repo.BulkUpsert(context.Background(), nil))
}

func TestTaskRepositoryBulkUpsertOnSQLite(t *testing.T) {
	db, err := database.Open(config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.EnsureSchema(context.Background(), db))

	repo := NewTaskRepository(db)
	task := models.MaintenanceTask{ID: "a", Description: "oil gears", DurationMinutes: 45, Priority: models.TaskPriorityMedium, JobRole: "mechanic", Qualification: "Senior"}
	require.NoError(t, repo.BulkUpsert(context.Background(), []models.MaintenanceTask{task}))

	task.DurationMinutes = 20
	task.Priority = models.TaskPriorityHigh
	require.NoError(t, repo.BulkUpsert(context.Background(), []models.MaintenanceTask{task}))

	tasks, err := repo.ListForEmployee(context.Background(), "mechanic", "Senior")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 20, tasks[0].DurationMinutes)
	assert.Equal(t, models.TaskPriorityHigh, tasks[0].Priority)
}
