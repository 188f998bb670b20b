package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	"github.com/noah-isme/park-maintenance-api/internal/middleware"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	"github.com/noah-isme/park-maintenance-api/internal/service"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
	"github.com/noah-isme/park-maintenance-api/pkg/response"
)

type schedulePlanner interface {
	Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*models.DaySchedule, error)
	Latest(ctx context.Context, name string) (*models.DaySchedule, bool, error)
}

type scheduleExporter interface {
	Export(ctx context.Context, name, format string) (*service.ExportedFile, error)
}

// ScheduleHandler exposes day schedule endpoints.
type ScheduleHandler struct {
	planner  schedulePlanner
	exporter scheduleExporter
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(planner schedulePlanner, exporter scheduleExporter) *ScheduleHandler {
	return &ScheduleHandler{planner: planner, exporter: exporter}
}

// Generate godoc
// @Summary Generate a day schedule
// @Description Builds, stores and returns the day schedule of one employee.
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.GenerateScheduleRequest true "Schedule request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /schedules [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	if err := authorizeEmployee(c, req.EmployeeName); err != nil {
		response.Error(c, err)
		return
	}
	schedule, err := h.planner.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, schedule, map[string]interface{}{
		"summary": service.SummarizeSchedule(schedule),
	})
}

// Latest godoc
// @Summary Latest day schedule
// @Tags Schedules
// @Produce json
// @Param name path string true "Employee name"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/{name} [get]
func (h *ScheduleHandler) Latest(c *gin.Context) {
	schedule, hit, err := h.planner.Latest(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, schedule, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Export the latest day schedule
// @Tags Schedules
// @Produce text/csv
// @Produce application/pdf
// @Param name path string true "Employee name"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/{name}/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	file, err := h.exporter.Export(c.Request.Context(), c.Param("name"), c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Data)
}
