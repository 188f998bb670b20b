package models

import "time"

// PlaceholderTime marks entries appended after the timed task sequence.
const PlaceholderTime = "--:--"

// EntryKind distinguishes task slots from policy breaks.
type EntryKind string

const (
	EntryKindTask      EntryKind = "task"
	EntryKindBreak     EntryKind = "break"
	EntryKindHeatBreak EntryKind = "heat_break"
)

// ScheduleEntry is one line of a day schedule. Task entries always serialize
// every attribute, zero values included; break entries leave them empty.
type ScheduleEntry struct {
	Time            string       `json:"time"`
	Kind            EntryKind    `json:"kind"`
	Activity        string       `json:"activity"`
	DurationMinutes int          `json:"duration_minutes"`
	Priority        TaskPriority `json:"priority"`
	JobRole         string       `json:"job_role"`
	Qualification   string       `json:"qualification"`
	Attraction      string       `json:"attraction"`
	PhysicalLoad    int          `json:"physical_load"`
	Outdoor         string       `json:"outdoor"`
	Weather         string       `json:"weather"`
}

// IsTask reports whether the entry occupies a timed slot.
func (e ScheduleEntry) IsTask() bool {
	return e.Kind == EntryKindTask
}

// DaySchedule is the unit handed to the output sink.
type DaySchedule struct {
	ID                   string          `json:"id"`
	Employee             Employee        `json:"employee"`
	Entries              []ScheduleEntry `json:"tasks"`
	TotalDurationMinutes int             `json:"total_duration"`
	Weather              *Weather        `json:"weather"`
	UsedFallback         bool            `json:"used_fallback"`
	GeneratedAt          time.Time       `json:"generated_at"`
}
