package service

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
)

type profileStore interface {
	Find(ctx context.Context, name string) (*models.Employee, error)
	Save(ctx context.Context, employee *models.Employee) error
}

// ProfileService loads and maintains employee profiles.
type ProfileService struct {
	repo      profileStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(repo profileStore, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{repo: repo, validator: validate, logger: logger}
}

// Get returns the stored profile for name with defaults applied.
func (s *ProfileService) Get(ctx context.Context, name string) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "employee name is required")
	}
	employee, err := s.repo.Find(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, appErrors.Clone(appErrors.ErrProfileNotFound, "no profile stored for "+name)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	if err := s.validator.Struct(employee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "stored profile is incomplete")
	}
	return employee, nil
}

// Upsert creates or replaces the profile for name.
func (s *ProfileService) Upsert(ctx context.Context, name string, req dto.UpsertProfileRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	employee := &models.Employee{
		Name:                   strings.TrimSpace(name),
		JobRole:                strings.TrimSpace(req.JobRole),
		Qualification:          strings.TrimSpace(req.Qualification),
		MaxWorkMinutes:         models.DefaultMaxWorkMinutes,
		OutdoorSpecializations: req.OutdoorSpecializations,
		SplitBreaks:            req.SplitBreaks,
		MaxPhysicalLoad:        models.DefaultMaxPhysicalLoad,
	}
	if req.MaxWorkMinutes != nil {
		employee.MaxWorkMinutes = *req.MaxWorkMinutes
	}
	if req.MaxPhysicalLoad != nil {
		employee.MaxPhysicalLoad = *req.MaxPhysicalLoad
	}
	if employee.OutdoorSpecializations == nil {
		employee.OutdoorSpecializations = []string{}
	}
	if err := s.validator.Struct(employee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile")
	}

	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store profile")
	}
	s.logger.Info("profile stored", zap.String("employee", employee.Name), zap.String("job_role", employee.JobRole))
	return employee, nil
}
