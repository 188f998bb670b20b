package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

const taskColumns = "id, description, duration_minutes, priority, job_role, qualification, physical_load, attraction, outdoor"

// TaskRepository reads the maintenance task catalog.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs the repository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListForEmployee returns the tasks matching role and qualification ordered by
// priority (HIGH first) then duration ascending. No match yields an empty
// slice, not an error.
func (r *TaskRepository) ListForEmployee(ctx context.Context, jobRole, qualification string) ([]models.MaintenanceTask, error) {
	query := r.db.Rebind(`SELECT ` + taskColumns + `
FROM maintenance_tasks
WHERE job_role = ? AND qualification = ?
ORDER BY CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END DESC, duration_minutes ASC, id ASC`)

	tasks := make([]models.MaintenanceTask, 0)
	if err := r.db.SelectContext(ctx, &tasks, query, jobRole, qualification); err != nil {
		return nil, fmt.Errorf("list maintenance tasks: %w", err)
	}
	return tasks, nil
}

// Count returns the catalog size; used by the readiness probe.
func (r *TaskRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM maintenance_tasks`); err != nil {
		return 0, fmt.Errorf("count maintenance tasks: %w", err)
	}
	return total, nil
}

// BulkUpsert inserts or replaces catalog rows by id within a transaction.
func (r *TaskRepository) BulkUpsert(ctx context.Context, tasks []models.MaintenanceTask) error {
	if len(tasks) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog import tx: %w", err)
	}
	const query = `INSERT INTO maintenance_tasks (` + taskColumns + `)
VALUES (:id, :description, :duration_minutes, :priority, :job_role, :qualification, :physical_load, :attraction, :outdoor)
ON CONFLICT (id)
DO UPDATE SET description = EXCLUDED.description, duration_minutes = EXCLUDED.duration_minutes,
              priority = EXCLUDED.priority, job_role = EXCLUDED.job_role, qualification = EXCLUDED.qualification,
              physical_load = EXCLUDED.physical_load, attraction = EXCLUDED.attraction, outdoor = EXCLUDED.outdoor`
	for i := range tasks {
		if _, err := tx.NamedExecContext(ctx, query, tasks[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert maintenance task %s: %w", tasks[i].ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog import tx: %w", err)
	}
	return nil
}
