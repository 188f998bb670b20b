package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/noah-isme/park-maintenance-api/internal/models"
)

// DocumentStore is the file backend for profiles and generated schedules.
type DocumentStore interface {
	Save(filename string, data []byte) (string, error)
	Read(filename string) ([]byte, error)
	Exists(filename string) bool
}

// ProfileFilename returns the profile document name for an employee.
func ProfileFilename(name string) string {
	return "profile_" + models.FileKey(name) + ".json"
}

// ProfileRepository loads and stores employee profiles as JSON documents.
type ProfileRepository struct {
	store DocumentStore
}

// NewProfileRepository constructs the repository.
func NewProfileRepository(store DocumentStore) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Find loads the profile for name. Fields absent from the document take the
// profile defaults. A missing document yields an error wrapping fs.ErrNotExist.
func (r *ProfileRepository) Find(ctx context.Context, name string) (*models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filename := ProfileFilename(name)
	if !r.store.Exists(filename) {
		return nil, fmt.Errorf("profile %s: %w", name, fs.ErrNotExist)
	}
	raw, err := r.store.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", name, err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("name", name)
	v.SetDefault("job_role", "")
	v.SetDefault("qualification", "")
	v.SetDefault("max_work_minutes", models.DefaultMaxWorkMinutes)
	v.SetDefault("outdoor_specializations", []string{})
	v.SetDefault("split_breaks", false)
	v.SetDefault("max_physical_load", models.DefaultMaxPhysicalLoad)
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", name, err)
	}

	employee := &models.Employee{
		Name:                   strings.TrimSpace(v.GetString("name")),
		JobRole:                v.GetString("job_role"),
		Qualification:          v.GetString("qualification"),
		MaxWorkMinutes:         v.GetInt("max_work_minutes"),
		OutdoorSpecializations: v.GetStringSlice("outdoor_specializations"),
		SplitBreaks:            v.GetBool("split_breaks"),
		MaxPhysicalLoad:        v.GetInt("max_physical_load"),
	}
	if employee.Name == "" {
		employee.Name = name
	}
	if employee.OutdoorSpecializations == nil {
		employee.OutdoorSpecializations = []string{}
	}
	return employee, nil
}

// Save writes the profile document, replacing any existing one.
func (r *ProfileRepository) Save(ctx context.Context, employee *models.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(employee, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", employee.Name, err)
	}
	if _, err := r.store.Save(ProfileFilename(employee.Name), payload); err != nil {
		return fmt.Errorf("save profile %s: %w", employee.Name, err)
	}
	return nil
}
