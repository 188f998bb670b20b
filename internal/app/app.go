package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/park-maintenance-api/internal/handler"
	"github.com/noah-isme/park-maintenance-api/internal/repository"
	"github.com/noah-isme/park-maintenance-api/internal/service"
	"github.com/noah-isme/park-maintenance-api/pkg/cache"
	"github.com/noah-isme/park-maintenance-api/pkg/config"
	"github.com/noah-isme/park-maintenance-api/pkg/database"
	"github.com/noah-isme/park-maintenance-api/pkg/jobs"
	"github.com/noah-isme/park-maintenance-api/pkg/storage"
)

const planCacheNamespace = "plan"

// Components holds the wired services shared by the API server and the CLI.
type Components struct {
	DB       *sqlx.DB
	Cache    *repository.CacheRepository
	Metrics  *service.MetricsService
	Profiles *service.ProfileService
	Catalog  *service.CatalogService
	Planner  *service.PlanningService
	Exporter *service.ExportService
	Batches  *service.BatchService
	Tokens   *service.TokenService
	Queue    *jobs.Queue

	Readiness map[string]handler.ReadinessCheck
}

// Build opens every backing store and wires the planning services. The
// returned cleanup closes what Build opened; the queue is not started.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.Driver == config.DriverSQLite {
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, schedule cache disabled", zap.Error(err))
			redisClient = nil
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, planCacheNamespace, logger)

	cleanup := func() {
		if err := cacheRepo.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
		if err := db.Close(); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}

	profileStore, err := storage.NewLocalStorage(cfg.Planner.ProfilesDir)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("profile storage: %w", err)
	}
	scheduleStore, err := storage.NewLocalStorage(cfg.Planner.OutputDir)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("schedule storage: %w", err)
	}

	builder, err := service.NewScheduleBuilder(cfg.Planner.WorkdayStart)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	validate := validator.New()
	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logger, redisClient != nil)

	tasks := repository.NewTaskRepository(db)
	profiles := service.NewProfileService(repository.NewProfileRepository(profileStore), validate, logger)
	catalog := service.NewCatalogService(tasks, cacheSvc, validate, logger)
	planner := service.NewPlanningService(
		profiles,
		tasks,
		service.NewStaticWeatherProvider(cfg.Weather),
		repository.NewScheduleRepository(scheduleStore),
		builder,
		cacheSvc,
		metrics,
		validate,
		logger,
	)
	exporter := service.NewExportService(planner, nil, nil, logger)

	jobRepo := repository.NewPlanningJobRepository(db)
	worker := service.NewBatchWorker(jobRepo, planner, metrics, logger)
	queue := jobs.NewQueue("planning", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Planner.WorkerConcurrency,
		MaxRetries: cfg.Planner.WorkerRetries,
		Logger:     logger,
		OnResult:   worker.OnResult,
	})
	if err := metrics.TrackQueueDepth("planning", queue.Depth); err != nil {
		logger.Warn("register queue depth gauge", zap.Error(err))
	}
	batches := service.NewBatchService(jobRepo, queue, validate, logger)

	tokens := service.NewTokenService(service.TokenConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		Expiry: cfg.JWT.Expiration,
	})

	return &Components{
		DB:       db,
		Cache:    cacheRepo,
		Metrics:  metrics,
		Profiles: profiles,
		Catalog:  catalog,
		Planner:  planner,
		Exporter: exporter,
		Batches:  batches,
		Tokens:   tokens,
		Queue:    queue,
		Readiness: map[string]handler.ReadinessCheck{
			"database": func(ctx context.Context) error {
				_, err := tasks.Count(ctx)
				return err
			},
			"cache": cacheRepo.Ping,
		},
	}, cleanup, nil
}
