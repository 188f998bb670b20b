package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

// ScheduleFilename returns the output document name for an employee.
func ScheduleFilename(name string) string {
	return "schedule_" + models.FileKey(name) + ".json"
}

// ScheduleRepository writes generated day schedules. Each employee has one
// document holding the most recent schedule.
type ScheduleRepository struct {
	store DocumentStore
}

// NewScheduleRepository constructs the repository.
func NewScheduleRepository(store DocumentStore) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// Save persists the schedule as a single document and returns its filename.
func (r *ScheduleRepository) Save(ctx context.Context, schedule *models.DaySchedule) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	payload, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schedule %s: %w", schedule.ID, err)
	}
	filename, err := r.store.Save(ScheduleFilename(schedule.Employee.Name), payload)
	if err != nil {
		return "", fmt.Errorf("save schedule %s: %w", schedule.ID, err)
	}
	return filename, nil
}

// FindLatest reads the last schedule written for name. A missing document
// yields an error wrapping fs.ErrNotExist.
func (r *ScheduleRepository) FindLatest(ctx context.Context, name string) (*models.DaySchedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filename := ScheduleFilename(name)
	if !r.store.Exists(filename) {
		return nil, fmt.Errorf("schedule %s: %w", name, fs.ErrNotExist)
	}
	raw, err := r.store.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("load schedule %s: %w", name, err)
	}
	var schedule models.DaySchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, fmt.Errorf("decode schedule %s: %w", name, err)
	}
	return &schedule, nil
}
