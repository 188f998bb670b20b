package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

const planningJobColumns = "id, employee_name, status, schedule_id, error_message, attempts, created_by, created_at, finished_at"

// PlanningJobRepository persists batch planning job rows.
type PlanningJobRepository struct {
	db *sqlx.DB
}

// NewPlanningJobRepository constructs the repository.
func NewPlanningJobRepository(db *sqlx.DB) *PlanningJobRepository {
	return &PlanningJobRepository{db: db}
}

// Create inserts a new job row with generated defaults.
func (r *PlanningJobRepository) Create(ctx context.Context, job *models.PlanningJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = models.PlanningJobQueued
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO planning_jobs (` + planningJobColumns + `)
VALUES (:id, :employee_name, :status, :schedule_id, :error_message, :attempts, :created_by, :created_at, :finished_at)`
	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("create planning job: %w", err)
	}
	return nil
}

// GetByID returns a job row by its identifier.
func (r *PlanningJobRepository) GetByID(ctx context.Context, id string) (*models.PlanningJob, error) {
	query := r.db.Rebind(`SELECT ` + planningJobColumns + ` FROM planning_jobs WHERE id = ?`)
	var job models.PlanningJob
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		return nil, fmt.Errorf("get planning job: %w", err)
	}
	return &job, nil
}

// UpdatePlanningJobParams defines the mutable fields.
type UpdatePlanningJobParams struct {
	Status       *models.PlanningJobStatus
	ScheduleID   *string
	ErrorMessage *string
	Attempts     *int
	FinishedAt   *time.Time
}

// Update persists the provided changes for a job row.
func (r *PlanningJobRepository) Update(ctx context.Context, id string, params UpdatePlanningJobParams) error {
	set := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

	if params.Status != nil {
		set = append(set, "status = ?")
		args = append(args, *params.Status)
	}
	if params.ScheduleID != nil {
		set = append(set, "schedule_id = ?")
		args = append(args, *params.ScheduleID)
	}
	if params.ErrorMessage != nil {
		set = append(set, "error_message = ?")
		args = append(args, *params.ErrorMessage)
	}
	if params.Attempts != nil {
		set = append(set, "attempts = ?")
		args = append(args, *params.Attempts)
	}
	if params.FinishedAt != nil {
		set = append(set, "finished_at = ?")
		args = append(args, *params.FinishedAt)
	}

	if len(set) == 0 {
		return nil
	}

	query := r.db.Rebind(fmt.Sprintf("UPDATE planning_jobs SET %s WHERE id = ?", strings.Join(set, ", ")))
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update planning job: %w", err)
	}
	return nil
}

// ListQueued fetches queued jobs, oldest first, for cold start recovery.
func (r *PlanningJobRepository) ListQueued(ctx context.Context, limit int) ([]models.PlanningJob, error) {
	if limit <= 0 {
		limit = 20
	}
	query := r.db.Rebind(`SELECT ` + planningJobColumns + ` FROM planning_jobs WHERE status = 'QUEUED' ORDER BY created_at ASC LIMIT ?`)
	var jobs []models.PlanningJob
	if err := r.db.SelectContext(ctx, &jobs, query, limit); err != nil {
		return nil, fmt.Errorf("list queued planning jobs: %w", err)
	}
	return jobs, nil
}
