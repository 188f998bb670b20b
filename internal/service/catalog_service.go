package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
)

type catalogWriter interface {
	BulkUpsert(ctx context.Context, tasks []models.MaintenanceTask) error
	Count(ctx context.Context) (int, error)
}

// CatalogService maintains the maintenance task catalog.
type CatalogService struct {
	repo      catalogWriter
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs a CatalogService. cache may be nil.
func NewCatalogService(repo catalogWriter, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Import validates and upserts every task of req. Nothing is written when any
// task is invalid or ids repeat.
func (s *CatalogService) Import(ctx context.Context, req dto.ImportCatalogRequest) (*dto.ImportCatalogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid catalog")
	}

	seen := make(map[string]struct{}, len(req.Tasks))
	tasks := make([]models.MaintenanceTask, 0, len(req.Tasks))
	for _, in := range req.Tasks {
		if _, dup := seen[in.ID]; dup {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("task id %q appears more than once", in.ID))
		}
		seen[in.ID] = struct{}{}
		tasks = append(tasks, in.ToModel())
	}

	if err := s.repo.BulkUpsert(ctx, tasks); err != nil {
		s.logger.Error("catalog import failed", zap.Int("tasks", len(tasks)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, "catalog import failed")
	}
	// memoized builds are keyed by catalog content and can no longer match
	_ = s.cache.Invalidate(ctx, buildResultKeyPrefix+"*")

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Warn("count catalog after import", zap.Error(err))
		total = -1
	}
	s.logger.Info("catalog imported", zap.Int("tasks", len(tasks)), zap.Int("total", total))
	return &dto.ImportCatalogResponse{Imported: len(tasks), Total: total}, nil
}
