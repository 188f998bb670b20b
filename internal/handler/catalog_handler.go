package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/park-maintenance-api/internal/dto"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
	"github.com/noah-isme/park-maintenance-api/pkg/response"
)

type catalogImporter interface {
	Import(ctx context.Context, req dto.ImportCatalogRequest) (*dto.ImportCatalogResponse, error)
}

// CatalogHandler exposes maintenance catalog endpoints.
type CatalogHandler struct {
	catalog catalogImporter
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog catalogImporter) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Import godoc
// @Summary Add or replace maintenance tasks
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body dto.ImportCatalogRequest true "Tasks"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /catalog/tasks [put]
func (h *CatalogHandler) Import(c *gin.Context) {
	var req dto.ImportCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	result, err := h.catalog.Import(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
