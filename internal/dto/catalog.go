package dto

import "github.com/noah-isme/park-maintenance-api/internal/models"

// CatalogTaskInput is one maintenance task in a catalog import.
type CatalogTaskInput struct {
	ID              string  `json:"id" validate:"required,max=64"`
	Description     string  `json:"description" validate:"required,max=255"`
	DurationMinutes int     `json:"duration_minutes" validate:"min=0,max=1440"`
	Priority        string  `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
	JobRole         string  `json:"job_role" validate:"required,max=80"`
	Qualification   string  `json:"qualification" validate:"required,max=40"`
	PhysicalLoad    int     `json:"physical_load" validate:"min=0"`
	Attraction      *string `json:"attraction"`
	Outdoor         bool    `json:"outdoor"`
}

// ToModel converts the input into a catalog row.
func (in CatalogTaskInput) ToModel() models.MaintenanceTask {
	return models.MaintenanceTask{
		ID:              in.ID,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Priority:        models.TaskPriority(in.Priority),
		JobRole:         in.JobRole,
		Qualification:   in.Qualification,
		PhysicalLoad:    in.PhysicalLoad,
		Attraction:      in.Attraction,
		Outdoor:         in.Outdoor,
	}
}

// ImportCatalogRequest replaces or adds catalog rows by id.
type ImportCatalogRequest struct {
	Tasks []CatalogTaskInput `json:"tasks" validate:"required,min=1,max=5000,dive"`
}

// ImportCatalogResponse reports the outcome of an import.
type ImportCatalogResponse struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}
