package service

import "github.com/noah-isme/park-maintenance-api/internal/models"

// FilterTasksForWeather drops outdoor tasks when rain is observed. The input
// slice is never modified; relative order of the remaining tasks is kept.
func FilterTasksForWeather(tasks []models.MaintenanceTask, weather *models.Weather) []models.MaintenanceTask {
	if weather == nil || !weather.Rain {
		return tasks
	}
	filtered := make([]models.MaintenanceTask, 0, len(tasks))
	for _, task := range tasks {
		if task.Outdoor {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}
