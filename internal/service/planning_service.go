package service

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
)

type taskCatalog interface {
	ListForEmployee(ctx context.Context, jobRole, qualification string) ([]models.MaintenanceTask, error)
}

type weatherSource interface {
	Current(ctx context.Context) (*models.Weather, error)
}

type profileLookup interface {
	Get(ctx context.Context, name string) (*models.Employee, error)
}

type scheduleStore interface {
	Save(ctx context.Context, schedule *models.DaySchedule) (string, error)
	FindLatest(ctx context.Context, name string) (*models.DaySchedule, error)
}

// builtPlan is the memoised output of one builder run.
type builtPlan struct {
	Entries []models.ScheduleEntry `json:"entries"`
	Total   int                    `json:"total"`
}

// PlanningService resolves a day's inputs, runs the schedule builder and
// persists the result.
type PlanningService struct {
	profiles  profileLookup
	catalog   taskCatalog
	weather   weatherSource
	schedules scheduleStore
	builder   *ScheduleBuilder
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewPlanningService constructs a PlanningService. cache and metrics may be nil.
func NewPlanningService(
	profiles profileLookup,
	catalog taskCatalog,
	weather weatherSource,
	schedules scheduleStore,
	builder *ScheduleBuilder,
	cache *CacheService,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
) *PlanningService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanningService{
		profiles:  profiles,
		catalog:   catalog,
		weather:   weather,
		schedules: schedules,
		builder:   builder,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate builds and stores a fresh day schedule for the requested employee.
func (s *PlanningService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*models.DaySchedule, error) {
	req.EmployeeName = strings.TrimSpace(req.EmployeeName)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule request")
	}

	employee, err := s.profiles.Get(ctx, req.EmployeeName)
	if err != nil {
		return nil, err
	}

	weather := req.Weather.ToModel()
	if weather == nil {
		weather = s.currentWeather(ctx)
	}

	start := time.Now()
	tasks, err := s.catalog.ListForEmployee(ctx, employee.JobRole, employee.Qualification)
	s.metrics.ObserveDBQuery("list_maintenance_tasks", time.Since(start))
	if err != nil {
		s.logger.Error("catalog lookup failed", zap.String("employee", employee.Name), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, appErrors.ErrCatalogUnavailable.Message)
	}

	filtered := FilterTasksForWeather(tasks, weather)
	plan := s.build(ctx, *employee, filtered, weather)

	schedule := &models.DaySchedule{
		ID:                   uuid.NewString(),
		Employee:             *employee,
		Entries:              plan.Entries,
		TotalDurationMinutes: plan.Total,
		Weather:              weather,
		UsedFallback:         len(filtered) == 0,
		GeneratedAt:          s.now().UTC(),
	}

	filename, err := s.schedules.Save(ctx, schedule)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store schedule")
	}
	_ = s.cache.Set(ctx, LatestScheduleKey(employee.Name), schedule, 0)
	s.metrics.ObserveSchedule(schedule.UsedFallback, schedule.TotalDurationMinutes, len(schedule.Entries))

	s.logger.Info("day schedule generated",
		zap.String("employee", employee.Name),
		zap.String("schedule_id", schedule.ID),
		zap.String("file", filename),
		zap.Int("catalog_tasks", len(tasks)),
		zap.Int("eligible_tasks", len(filtered)),
		zap.Int("total_minutes", schedule.TotalDurationMinutes),
		zap.Bool("fallback", schedule.UsedFallback),
	)
	return schedule, nil
}

// Latest returns the last stored schedule for name and whether it came from
// the cache.
func (s *PlanningService) Latest(ctx context.Context, name string) (*models.DaySchedule, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "employee name is required")
	}

	var cached models.DaySchedule
	if s.cache.Get(ctx, LatestScheduleKey(name), &cached) {
		return &cached, true, nil
	}

	schedule, err := s.schedules.FindLatest(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, appErrors.Clone(appErrors.ErrScheduleNotFound, "no schedule generated for "+name)
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}
	_ = s.cache.Set(ctx, LatestScheduleKey(name), schedule, 0)
	return schedule, false, nil
}

func (s *PlanningService) currentWeather(ctx context.Context) *models.Weather {
	if s.weather == nil {
		return nil
	}
	weather, err := s.weather.Current(ctx)
	if err != nil {
		s.logger.Warn("weather unavailable, planning without observation", zap.Error(err))
		return nil
	}
	return weather
}

func (s *PlanningService) build(ctx context.Context, employee models.Employee, tasks []models.MaintenanceTask, weather *models.Weather) builtPlan {
	key := buildResultKeyPrefix + PlanFingerprint(s.builder.WorkdayStart(), employee, tasks, weather)

	var plan builtPlan
	if s.cache.Get(ctx, key, &plan) {
		return plan
	}

	plan.Entries, plan.Total = s.builder.Build(employee, tasks, weather)
	_ = s.cache.Set(ctx, key, plan, 0)
	return plan
}
