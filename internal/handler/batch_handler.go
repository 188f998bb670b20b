package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
	"github.com/noah-isme/park-maintenance-api/pkg/response"
)

type batchPlanner interface {
	Enqueue(ctx context.Context, req dto.BatchScheduleRequest, actor string) ([]dto.PlanningJobResponse, error)
	Status(ctx context.Context, id string) (*models.PlanningJob, error)
}

// BatchHandler exposes asynchronous planning endpoints.
type BatchHandler struct {
	batches batchPlanner
}

// NewBatchHandler constructs the handler.
func NewBatchHandler(batches batchPlanner) *BatchHandler {
	return &BatchHandler{batches: batches}
}

// Enqueue godoc
// @Summary Queue day schedules for several employees
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.BatchScheduleRequest true "Employees"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedules/batch [post]
func (h *BatchHandler) Enqueue(c *gin.Context) {
	var req dto.BatchScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	queued, err := h.batches.Enqueue(c.Request.Context(), req, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, queued)
}

// Status godoc
// @Summary Planning job status
// @Tags Schedules
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/batch/{id} [get]
func (h *BatchHandler) Status(c *gin.Context) {
	job, err := h.batches.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}
