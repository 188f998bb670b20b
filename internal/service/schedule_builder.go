package service

import (
	"fmt"
	"time"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

// DefaultWorkdayStart is the first slot of every schedule unless configured.
const DefaultWorkdayStart = "08:00"

const (
	slotLayout = "15:04"
	dayMinutes = 24 * 60

	breakPolicyThresholdMinutes = 330
	splitBreakMinutes           = 15
	singleBreakMinutes          = 30
	heatThresholdDegrees        = 30
	heatBreakMinutes            = 15

	unknownWeatherLabel = "unknown"
	noAttractionLabel   = "none"
	breakLabel          = "break"
	heatBreakLabel      = "heat break"
)

var fallbackTasks = []models.MaintenanceTask{
	{ID: "fallback-tool-check", Description: "tool check", DurationMinutes: 30, Priority: models.TaskPriorityLow},
	{ID: "fallback-workspace-cleanup", Description: "workspace cleanup", DurationMinutes: 15, Priority: models.TaskPriorityLow},
}

// FallbackTasks returns a copy of the generic catalog used when no catalog
// task matches the employee.
func FallbackTasks() []models.MaintenanceTask {
	out := make([]models.MaintenanceTask, len(fallbackTasks))
	copy(out, fallbackTasks)
	return out
}

// ScheduleBuilder turns an ordered catalog into a day schedule. It holds no
// per-run state, so one builder may serve concurrent runs.
type ScheduleBuilder struct {
	start time.Time
}

// NewScheduleBuilder parses workdayStart (HH:MM); empty means 08:00.
func NewScheduleBuilder(workdayStart string) (*ScheduleBuilder, error) {
	if workdayStart == "" {
		workdayStart = DefaultWorkdayStart
	}
	start, err := time.Parse(slotLayout, workdayStart)
	if err != nil {
		return nil, fmt.Errorf("parse workday start %q: %w", workdayStart, err)
	}
	return &ScheduleBuilder{start: start}, nil
}

// MinutesLeftInDay is the most task time that fits between the workday start
// and midnight.
func (b *ScheduleBuilder) MinutesLeftInDay() int {
	return dayMinutes - (b.start.Hour()*60 + b.start.Minute())
}

// WorkdayStart returns the configured first slot as HH:MM.
func (b *ScheduleBuilder) WorkdayStart() string {
	return b.start.Format(slotLayout)
}

// Build fills the employee's working time with catalog tasks, cycling through
// tasks (expected ordered by priority desc, duration asc) until the next task
// no longer fits, then appends policy breaks. Tasks never run past midnight,
// whatever the profile allows. The returned total counts task minutes only.
func (b *ScheduleBuilder) Build(employee models.Employee, tasks []models.MaintenanceTask, weather *models.Weather) ([]models.ScheduleEntry, int) {
	catalog := tasks
	if len(catalog) == 0 {
		catalog = fallbackTasks
	}

	weatherLabel := unknownWeatherLabel
	if weather != nil {
		weatherLabel = weather.Description
	}

	budget := employee.MaxWorkMinutes
	dayLeft := b.MinutesLeftInDay()
	if budget > dayLeft {
		budget = dayLeft
	}

	clock := b.start
	total := 0
	entries := make([]models.ScheduleEntry, 0, len(catalog)+3)

fill:
	for {
		passMinutes := 0
		for _, task := range catalog {
			if task.DurationMinutes < 0 {
				continue
			}
			// total == dayLeft would put the slot at 24:00
			if total+task.DurationMinutes > budget || total >= dayLeft {
				break fill
			}
			entries = append(entries, taskEntry(clock, task, employee, weatherLabel))
			clock = clock.Add(time.Duration(task.DurationMinutes) * time.Minute)
			total += task.DurationMinutes
			passMinutes += task.DurationMinutes
		}
		// a pass of zero-minute tasks would repeat forever
		if passMinutes == 0 {
			break
		}
	}

	entries = append(entries, policyBreaks(employee)...)
	if weather != nil && weather.Temperature > heatThresholdDegrees {
		entries = append(entries, breakEntry(models.EntryKindHeatBreak, heatBreakLabel, heatBreakMinutes))
	}

	return entries, total
}

func taskEntry(clock time.Time, task models.MaintenanceTask, employee models.Employee, weatherLabel string) models.ScheduleEntry {
	role := task.JobRole
	if role == "" {
		role = employee.JobRole
	}
	qualification := task.Qualification
	if qualification == "" {
		qualification = employee.Qualification
	}
	attraction := noAttractionLabel
	if task.Attraction != nil && *task.Attraction != "" {
		attraction = *task.Attraction
	}
	return models.ScheduleEntry{
		Time:            clock.Format(slotLayout),
		Kind:            models.EntryKindTask,
		Activity:        task.Description,
		DurationMinutes: task.DurationMinutes,
		Priority:        task.Priority,
		JobRole:         role,
		Qualification:   qualification,
		Attraction:      attraction,
		PhysicalLoad:    task.PhysicalLoad,
		Outdoor:         yesNo(task.Outdoor),
		Weather:         weatherLabel,
	}
}

func policyBreaks(employee models.Employee) []models.ScheduleEntry {
	if employee.MaxWorkMinutes <= breakPolicyThresholdMinutes {
		return nil
	}
	if employee.SplitBreaks {
		return []models.ScheduleEntry{
			breakEntry(models.EntryKindBreak, breakLabel, splitBreakMinutes),
			breakEntry(models.EntryKindBreak, breakLabel, splitBreakMinutes),
		}
	}
	return []models.ScheduleEntry{breakEntry(models.EntryKindBreak, breakLabel, singleBreakMinutes)}
}

func breakEntry(kind models.EntryKind, label string, minutes int) models.ScheduleEntry {
	return models.ScheduleEntry{
		Time:            models.PlaceholderTime,
		Kind:            kind,
		Activity:        label,
		DurationMinutes: minutes,
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
