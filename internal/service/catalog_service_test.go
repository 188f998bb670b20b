package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
)

type fakeCatalogWriter struct {
	written   []models.MaintenanceTask
	upsertErr error
	countErr  error
}

func (f *fakeCatalogWriter) BulkUpsert(ctx context.Context, tasks []models.MaintenanceTask) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.written = append(f.written, tasks...)
	return nil
}

func (f *fakeCatalogWriter) Count(ctx context.Context) (int, error) {
	return len(f.written), f.countErr
}

func catalogInput(id string) dto.CatalogTaskInput {
	return dto.CatalogTaskInput{ID: id, Description: "oil gears", DurationMinutes: 45, Priority: "MEDIUM", JobRole: "mechanic", Qualification: "Senior"}
}

func TestCatalogServiceImport(t *testing.T) {
	repo := &fakeCatalogWriter{}
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), buildResultKeyPrefix+"abc", builtPlan{Total: 10}, 0))
	require.NoError(t, cache.Set(context.Background(), LatestScheduleKey("Jan"), models.DaySchedule{ID: "s-1"}, 0))
	svc := NewCatalogService(repo, NewCacheService(cache, nil, 0, zap.NewNop(), true), nil, nil)

	resp, err := svc.Import(context.Background(), dto.ImportCatalogRequest{Tasks: []dto.CatalogTaskInput{catalogInput("a"), catalogInput("b")}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, repo.written, 2)
	assert.Equal(t, models.TaskPriorityMedium, repo.written[0].Priority)

	assert.NotContains(t, cache.items, buildResultKeyPrefix+"abc")
	assert.Contains(t, cache.items, LatestScheduleKey("Jan"))
}

func TestCatalogServiceImportRejectsInvalidInput(t *testing.T) {
	repo := &fakeCatalogWriter{}
	svc := NewCatalogService(repo, nil, nil, nil)

	bad := catalogInput("a")
	bad.Priority = "URGENT"
	_, err := svc.Import(context.Background(), dto.ImportCatalogRequest{Tasks: []dto.CatalogTaskInput{bad}})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = svc.Import(context.Background(), dto.ImportCatalogRequest{Tasks: []dto.CatalogTaskInput{catalogInput("a"), catalogInput("a")}})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, err.Error(), `"a"`)

	_, err = svc.Import(context.Background(), dto.ImportCatalogRequest{})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, repo.written)
}

func TestCatalogServiceImportStoreFailure(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogWriter{upsertErr: errors.New("disk full")}, nil, nil, nil)
	_, err := svc.Import(context.Background(), dto.ImportCatalogRequest{Tasks: []dto.CatalogTaskInput{catalogInput("a")}})
	assert.True(t, errors.Is(err, appErrors.ErrCatalogUnavailable))

	counting := NewCatalogService(&fakeCatalogWriter{countErr: errors.New("locked")}, nil, nil, nil)
	resp, err := counting.Import(context.Background(), dto.ImportCatalogRequest{Tasks: []dto.CatalogTaskInput{catalogInput("a")}})
	require.NoError(t, err)
	assert.Equal(t, -1, resp.Total)
}
