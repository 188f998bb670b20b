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

type profileManager interface {
	Get(ctx context.Context, name string) (*models.Employee, error)
	Upsert(ctx context.Context, name string, req dto.UpsertProfileRequest) (*models.Employee, error)
}

// ProfileHandler exposes employee profile endpoints.
type ProfileHandler struct {
	profiles profileManager
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(profiles profileManager) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get godoc
// @Summary Get employee profile
// @Tags Profiles
// @Produce json
// @Param name path string true "Employee name"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{name}/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	employee, err := h.profiles.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employee)
}

// Upsert godoc
// @Summary Create or replace employee profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param name path string true "Employee name"
// @Param payload body dto.UpsertProfileRequest true "Profile"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /employees/{name}/profile [put]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	employee, err := h.profiles.Upsert(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employee)
}
