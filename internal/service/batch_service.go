package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	"github.com/noah-isme/park-maintenance-api/internal/repository"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
	"github.com/noah-isme/park-maintenance-api/pkg/jobs"
)

// PlanningJobType labels queue jobs that generate one day schedule.
const PlanningJobType = "day_schedule"

type planningJobStore interface {
	Create(ctx context.Context, job *models.PlanningJob) error
	GetByID(ctx context.Context, id string) (*models.PlanningJob, error)
	Update(ctx context.Context, id string, params repository.UpdatePlanningJobParams) error
	ListQueued(ctx context.Context, limit int) ([]models.PlanningJob, error)
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type scheduleGenerator interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*models.DaySchedule, error)
}

// BatchService queues day schedule generation for many employees at once.
type BatchService struct {
	repo      planningJobStore
	queue     jobDispatcher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBatchService constructs the batch service.
func NewBatchService(repo planningJobStore, queue jobDispatcher, validate *validator.Validate, logger *zap.Logger) *BatchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{repo: repo, queue: queue, validator: validate, logger: logger}
}

// Enqueue persists one job per employee and hands them to the queue.
// Duplicate names within a request are queued once.
func (s *BatchService) Enqueue(ctx context.Context, req dto.BatchScheduleRequest, actor string) ([]dto.PlanningJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch request")
	}

	seen := make(map[string]struct{}, len(req.EmployeeNames))
	out := make([]dto.PlanningJobResponse, 0, len(req.EmployeeNames))
	for _, raw := range req.EmployeeNames {
		name := strings.TrimSpace(raw)
		if _, dup := seen[name]; dup || name == "" {
			continue
		}
		seen[name] = struct{}{}

		job := &models.PlanningJob{EmployeeName: name, Status: models.PlanningJobQueued, CreatedBy: actor}
		if err := s.repo.Create(ctx, job); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create planning job")
		}
		if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: PlanningJobType}); err != nil {
			s.markFailed(ctx, job.ID, "failed to enqueue job")
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue planning job")
		}
		out = append(out, dto.PlanningJobResponse{ID: job.ID, EmployeeName: name, Status: job.Status})
	}
	s.logger.Info("planning batch queued", zap.String("actor", actor), zap.Int("jobs", len(out)))
	return out, nil
}

// Status returns a planning job row.
func (s *BatchService) Status(ctx context.Context, id string) (*models.PlanningJob, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "planning job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load planning job")
	}
	return job, nil
}

// RecoverPendingJobs replays queued jobs after a restart.
func (s *BatchService) RecoverPendingJobs(ctx context.Context) {
	pending, err := s.repo.ListQueued(ctx, 50)
	if err != nil {
		s.logger.Sugar().Warnw("failed to recover queued planning jobs", "error", err)
		return
	}
	for _, job := range pending {
		if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: PlanningJobType}); err != nil {
			s.logger.Sugar().Warnw("failed to requeue pending job", "job_id", job.ID, "error", err)
		}
	}
}

func (s *BatchService) markFailed(ctx context.Context, id, msg string) {
	status := models.PlanningJobFailed
	now := time.Now().UTC()
	if err := s.repo.Update(ctx, id, repository.UpdatePlanningJobParams{
		Status:       &status,
		ErrorMessage: &msg,
		FinishedAt:   &now,
	}); err != nil {
		s.logger.Sugar().Warnw("failed to mark job failed", "job_id", id, "error", err)
	}
}

// BatchWorker bridges queue jobs to the planning service.
type BatchWorker struct {
	repo    planningJobStore
	planner scheduleGenerator
	metrics *MetricsService
	logger  *zap.Logger
}

// NewBatchWorker constructs a worker.
func NewBatchWorker(repo planningJobStore, planner scheduleGenerator, metrics *MetricsService, logger *zap.Logger) *BatchWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchWorker{repo: repo, planner: planner, metrics: metrics, logger: logger}
}

// Handle processes a queue job. Client errors (missing profile, invalid
// name) fail the job at once; anything else is returned for a retry.
func (w *BatchWorker) Handle(ctx context.Context, job jobs.Job) error {
	record, err := w.repo.GetByID(ctx, job.ID)
	if err != nil {
		return err
	}
	processing := models.PlanningJobProcessing
	attempts := job.Attempt + 1
	if err := w.repo.Update(ctx, job.ID, repository.UpdatePlanningJobParams{
		Status:   &processing,
		Attempts: &attempts,
	}); err != nil {
		return err
	}

	schedule, err := w.planner.Generate(ctx, dto.GenerateScheduleRequest{EmployeeName: record.EmployeeName})
	if err != nil {
		if isPermanent(err) {
			w.finish(ctx, job.ID, nil, err)
			return nil
		}
		queued := models.PlanningJobQueued
		msg := err.Error()
		if updateErr := w.repo.Update(ctx, job.ID, repository.UpdatePlanningJobParams{
			Status:       &queued,
			ErrorMessage: &msg,
		}); updateErr != nil {
			w.logger.Sugar().Warnw("failed to mark job queued", "job_id", job.ID, "error", updateErr)
		}
		return err
	}

	w.finish(ctx, job.ID, &schedule.ID, nil)
	return nil
}

// OnResult is the queue hook; it fails jobs that exhausted their retries.
func (w *BatchWorker) OnResult(job jobs.Job, err error, final bool) {
	if !final || err == nil {
		return
	}
	w.finish(context.Background(), job.ID, nil, err)
}

func (w *BatchWorker) finish(ctx context.Context, id string, scheduleID *string, cause error) {
	status := models.PlanningJobFinished
	msg := ""
	if cause != nil {
		status = models.PlanningJobFailed
		msg = cause.Error()
	}
	now := time.Now().UTC()
	if err := w.repo.Update(ctx, id, repository.UpdatePlanningJobParams{
		Status:       &status,
		ScheduleID:   scheduleID,
		ErrorMessage: &msg,
		FinishedAt:   &now,
	}); err != nil {
		w.logger.Sugar().Warnw("failed to finalise planning job", "job_id", id, "status", status, "error", err)
	}
	w.metrics.ObservePlanningJob(cause)
}

func isPermanent(err error) bool {
	var appErr *appErrors.Error
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Status >= http.StatusBadRequest && appErr.Status < http.StatusInternalServerError
}
