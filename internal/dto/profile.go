package dto

// UpsertProfileRequest stores or replaces an employee profile. Numeric limits
// left out of the payload take the documented defaults; an explicit zero is kept.
type UpsertProfileRequest struct {
	JobRole                string   `json:"job_role" validate:"required,max=80"`
	Qualification          string   `json:"qualification" validate:"required,max=40"`
	MaxWorkMinutes         *int     `json:"max_work_minutes" validate:"omitempty,min=0,max=1440"`
	OutdoorSpecializations []string `json:"outdoor_specializations" validate:"max=20,dive,required"`
	SplitBreaks            bool     `json:"split_breaks"`
	MaxPhysicalLoad        *int     `json:"max_physical_load" validate:"omitempty,min=0"`
}
