package models

import "strings"

// Profile defaults applied when a stored profile omits a field.
const (
	DefaultMaxWorkMinutes  = 480
	DefaultMaxPhysicalLoad = 30
)

// Qualification levels seen in the park's staffing data. The set is open;
// any non-empty value is accepted.
const (
	QualificationIntern = "Intern"
	QualificationJunior = "Junior"
	QualificationMedior = "Medior"
	QualificationSenior = "Senior"
)

// Employee is the profile a day schedule is built for.
type Employee struct {
	Name                   string   `json:"name" validate:"required,max=120"`
	JobRole                string   `json:"job_role" validate:"required"`
	Qualification          string   `json:"qualification" validate:"required"`
	MaxWorkMinutes         int      `json:"max_work_minutes" validate:"min=0,max=1440"`
	OutdoorSpecializations []string `json:"outdoor_specializations"`
	SplitBreaks            bool     `json:"split_breaks"`
	MaxPhysicalLoad        int      `json:"max_physical_load" validate:"min=0"`
}

// FileKey converts an employee name into the token used in profile and
// schedule file names ("Jan de Vries" -> "Jan_de_Vries").
func FileKey(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
