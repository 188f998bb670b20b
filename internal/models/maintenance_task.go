package models

// TaskPriority orders maintenance tasks; HIGH is scheduled first.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityLow    TaskPriority = "LOW"
)

// Rank maps the priority onto an ordinal, higher is more urgent.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityHigh:
		return 3
	case TaskPriorityMedium:
		return 2
	case TaskPriorityLow:
		return 1
	default:
		return 0
	}
}

// MaintenanceTask is a catalog row from maintenance_tasks.
type MaintenanceTask struct {
	ID              string       `db:"id" json:"id"`
	Description     string       `db:"description" json:"description"`
	DurationMinutes int          `db:"duration_minutes" json:"duration_minutes"`
	Priority        TaskPriority `db:"priority" json:"priority"`
	JobRole         string       `db:"job_role" json:"job_role"`
	Qualification   string       `db:"qualification" json:"qualification"`
	PhysicalLoad    int          `db:"physical_load" json:"physical_load"`
	Attraction      *string      `db:"attraction" json:"attraction,omitempty"`
	Outdoor         bool         `db:"outdoor" json:"outdoor"`
}
