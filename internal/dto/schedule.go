package dto

import "github.com/noah-isme/park-maintenance-api/internal/models"

// WeatherInput overrides the configured weather source for one request.
type WeatherInput struct {
	Temperature int    `json:"temperature" validate:"min=-60,max=60"`
	Description string `json:"description" validate:"max=120"`
	Rain        bool   `json:"rain"`
}

// ToModel converts the payload into a weather snapshot.
func (w *WeatherInput) ToModel() *models.Weather {
	if w == nil {
		return nil
	}
	return &models.Weather{Temperature: w.Temperature, Description: w.Description, Rain: w.Rain}
}

// GenerateScheduleRequest asks for a fresh day schedule.
type GenerateScheduleRequest struct {
	EmployeeName string        `json:"employee_name" validate:"required,max=120"`
	Weather      *WeatherInput `json:"weather,omitempty" validate:"omitempty"`
}

// BatchScheduleRequest queues day schedules for several employees.
type BatchScheduleRequest struct {
	EmployeeNames []string `json:"employee_names" validate:"required,min=1,max=200,dive,required,max=120"`
}

// PlanningJobResponse is returned for each queued employee.
type PlanningJobResponse struct {
	ID           string                   `json:"id"`
	EmployeeName string                   `json:"employee_name"`
	Status       models.PlanningJobStatus `json:"status"`
}

// ScheduleSummary condenses a day schedule for list style responses.
type ScheduleSummary struct {
	ID                   string `json:"id"`
	EmployeeName         string `json:"employee_name"`
	TaskCount            int    `json:"task_count"`
	BreakMinutes         int    `json:"break_minutes"`
	TotalDurationMinutes int    `json:"total_duration"`
	UsedFallback         bool   `json:"used_fallback"`
}
