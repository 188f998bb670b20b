package service

import (
	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
)

// SummarizeSchedule condenses a day schedule into counts.
func SummarizeSchedule(schedule *models.DaySchedule) dto.ScheduleSummary {
	summary := dto.ScheduleSummary{
		ID:                   schedule.ID,
		EmployeeName:         schedule.Employee.Name,
		TotalDurationMinutes: schedule.TotalDurationMinutes,
		UsedFallback:         schedule.UsedFallback,
	}
	for _, entry := range schedule.Entries {
		if entry.IsTask() {
			summary.TaskCount++
			continue
		}
		summary.BreakMinutes += entry.DurationMinutes
	}
	return summary
}
