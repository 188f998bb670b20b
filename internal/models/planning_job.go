package models

import "time"

// PlanningJobStatus captures background generation lifecycle states.
type PlanningJobStatus string

const (
	PlanningJobQueued     PlanningJobStatus = "QUEUED"
	PlanningJobProcessing PlanningJobStatus = "PROCESSING"
	PlanningJobFinished   PlanningJobStatus = "FINISHED"
	PlanningJobFailed     PlanningJobStatus = "FAILED"
)

// PlanningJob is a queued day schedule generation for one employee.
type PlanningJob struct {
	ID           string            `db:"id" json:"id"`
	EmployeeName string            `db:"employee_name" json:"employee_name"`
	Status       PlanningJobStatus `db:"status" json:"status"`
	ScheduleID   *string           `db:"schedule_id" json:"schedule_id,omitempty"`
	ErrorMessage *string           `db:"error_message" json:"error_message,omitempty"`
	Attempts     int               `db:"attempts" json:"attempts"`
	CreatedBy    string            `db:"created_by" json:"created_by"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	FinishedAt   *time.Time        `db:"finished_at" json:"finished_at,omitempty"`
}
