package service

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

func drawCatalog(rt *rapid.T) []models.MaintenanceTask {
	n := rapid.IntRange(0, 8).Draw(rt, "catalogSize")
	priorities := []models.TaskPriority{models.TaskPriorityHigh, models.TaskPriorityMedium, models.TaskPriorityLow}
	tasks := make([]models.MaintenanceTask, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, models.MaintenanceTask{
			ID:              fmt.Sprintf("task-%d", i),
			Description:     fmt.Sprintf("task %d", i),
			DurationMinutes: rapid.IntRange(0, 240).Draw(rt, fmt.Sprintf("duration_%d", i)),
			Priority:        rapid.SampledFrom(priorities).Draw(rt, fmt.Sprintf("priority_%d", i)),
			PhysicalLoad:    rapid.IntRange(0, 50).Draw(rt, fmt.Sprintf("load_%d", i)),
			Outdoor:         rapid.Bool().Draw(rt, fmt.Sprintf("outdoor_%d", i)),
		})
	}
	return tasks
}

func drawWeather(rt *rapid.T) *models.Weather {
	if !rapid.Bool().Draw(rt, "hasWeather") {
		return nil
	}
	return &models.Weather{
		Temperature: rapid.IntRange(-10, 40).Draw(rt, "temperature"),
		Description: rapid.SampledFrom([]string{"cloudy", "sunny", "rain"}).Draw(rt, "description"),
		Rain:        rapid.Bool().Draw(rt, "rain"),
	}
}

func drawEmployee(rt *rapid.T) models.Employee {
	return models.Employee{
		Name:           "property",
		JobRole:        "mechanic",
		Qualification:  "Medior",
		MaxWorkMinutes: rapid.IntRange(0, 1440).Draw(rt, "maxWorkMinutes"),
		SplitBreaks:    rapid.Bool().Draw(rt, "splitBreaks"),
	}
}

// Total task minutes never exceed the employee's maximum work duration.
func TestPropertyTotalNeverOvershoots(t *testing.T) {
	b, _ := NewScheduleBuilder("")
	rapid.Check(t, func(rt *rapid.T) {
		employee := drawEmployee(rt)
		weather := drawWeather(rt)
		entries, total := b.Build(employee, FilterTasksForWeather(drawCatalog(rt), weather), weather)

		if total > employee.MaxWorkMinutes {
			rt.Fatalf("total %d exceeds max %d", total, employee.MaxWorkMinutes)
		}
		sum := 0
		for _, e := range entries {
			if e.IsTask() {
				sum += e.DurationMinutes
			}
		}
		if sum != total {
			rt.Fatalf("task minutes %d differ from reported total %d", sum, total)
		}
	})
}

// Task start times are contiguous from the workday start.
func TestPropertySlotsAreContiguous(t *testing.T) {
	b, _ := NewScheduleBuilder("")
	rapid.Check(t, func(rt *rapid.T) {
		employee := drawEmployee(rt)
		weather := drawWeather(rt)
		entries, _ := b.Build(employee, drawCatalog(rt), weather)

		expected, _ := time.Parse(slotLayout, DefaultWorkdayStart)
		for _, e := range entries {
			if !e.IsTask() {
				if e.Time != models.PlaceholderTime {
					rt.Fatalf("break entry has time %q", e.Time)
				}
				continue
			}
			if e.Time != expected.Format(slotLayout) {
				rt.Fatalf("slot %q, want %q", e.Time, expected.Format(slotLayout))
			}
			expected = expected.Add(time.Duration(e.DurationMinutes) * time.Minute)
		}
	})
}

// Rain removes every outdoor task from the filtered catalog.
func TestPropertyRainRemovesOutdoorTasks(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		catalog := drawCatalog(rt)
		filtered := FilterTasksForWeather(catalog, &models.Weather{Rain: true})
		indoor := 0
		for _, task := range catalog {
			if !task.Outdoor {
				indoor++
			}
		}
		if len(filtered) != indoor {
			rt.Fatalf("filtered %d tasks, want %d indoor", len(filtered), indoor)
		}
		for _, task := range filtered {
			if task.Outdoor {
				rt.Fatalf("outdoor task %s survived rain filter", task.ID)
			}
		}
	})
}

// Break and heat break counts follow the profile and the temperature.
func TestPropertyBreakPolicy(t *testing.T) {
	b, _ := NewScheduleBuilder("")
	rapid.Check(t, func(rt *rapid.T) {
		employee := drawEmployee(rt)
		weather := drawWeather(rt)
		entries, _ := b.Build(employee, drawCatalog(rt), weather)

		breaks, breakMinutes := countKind(entries, models.EntryKindBreak)
		switch {
		case employee.MaxWorkMinutes <= 330:
			if breaks != 0 {
				rt.Fatalf("expected no breaks, got %d", breaks)
			}
		case employee.SplitBreaks:
			if breaks != 2 || breakMinutes != 30 {
				rt.Fatalf("expected two 15 minute breaks, got %d totalling %d", breaks, breakMinutes)
			}
		default:
			if breaks != 1 || breakMinutes != 30 {
				rt.Fatalf("expected one 30 minute break, got %d totalling %d", breaks, breakMinutes)
			}
		}

		heat, heatMinutes := countKind(entries, models.EntryKindHeatBreak)
		wantHeat := weather != nil && weather.Temperature > 30
		if wantHeat && (heat != 1 || heatMinutes != 15) {
			rt.Fatalf("expected one 15 minute heat break, got %d", heat)
		}
		if !wantHeat && heat != 0 {
			rt.Fatalf("unexpected heat break")
		}
	})
}

// Task start times never decrease and stay within the day, whatever the
// workday start and profile limit.
func TestPropertySlotsStayWithinTheDay(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hour := rapid.IntRange(0, 23).Draw(rt, "startHour")
		minute := rapid.IntRange(0, 59).Draw(rt, "startMinute")
		b, err := NewScheduleBuilder(fmt.Sprintf("%02d:%02d", hour, minute))
		if err != nil {
			rt.Fatalf("builder: %v", err)
		}
		employee := drawEmployee(rt)
		entries, total := b.Build(employee, drawCatalog(rt), drawWeather(rt))

		if total > b.MinutesLeftInDay() {
			rt.Fatalf("total %d runs past midnight (%d minutes left)", total, b.MinutesLeftInDay())
		}
		previous := ""
		for _, e := range entries {
			if !e.IsTask() {
				continue
			}
			if previous == "" && e.Time != b.WorkdayStart() {
				rt.Fatalf("first slot %q, want %q", e.Time, b.WorkdayStart())
			}
			if e.Time < previous {
				rt.Fatalf("slot %q follows %q", e.Time, previous)
			}
			previous = e.Time
		}
	})
}

// Identical inputs give identical output.
func TestPropertyBuildIsDeterministic(t *testing.T) {
	b, _ := NewScheduleBuilder("")
	rapid.Check(t, func(rt *rapid.T) {
		employee := drawEmployee(rt)
		weather := drawWeather(rt)
		catalog := drawCatalog(rt)

		first, firstTotal := b.Build(employee, catalog, weather)
		second, secondTotal := b.Build(employee, catalog, weather)
		if firstTotal != secondTotal || !reflect.DeepEqual(first, second) {
			rt.Fatalf("builder output differs between identical runs")
		}
	})
}
