// Package project handles persistence: saving and loading projects,
// application configuration, and full data backups as JSON files.
package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/libinalum/WH-LayoutDesigner/internal/model"
)

// Project bundles everything needed to reproduce an optimization run:
// the facility, the material handling equipment, the product catalog,
// the engine options, and the most recent layout result.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	Facility  model.Facility      `json:"facility"`
	Equipment model.Equipment     `json:"equipment"`
	Products  []model.Product     `json:"products"`
	Options   model.EngineOptions `json:"options"`
	Layout    *model.Layout       `json:"layout,omitempty"`
}

// NewProject creates a named project with default engine options.
func NewProject(name string, facility model.Facility, eq model.Equipment) Project {
	now := time.Now().UTC().Format(time.RFC3339)
	return Project{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Facility:  facility,
		Equipment: eq,
		Options:   model.DefaultEngineOptions(),
	}
}

// Save persists the project to the given path as JSON, creating any
// missing parent directories. UpdatedAt is refreshed on every save.
func Save(path string, p Project) error {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given path.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, err
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, err
	}
	if p.Name == "" {
		return Project{}, errors.New("invalid project file: missing name")
	}
	if p.Products == nil {
		p.Products = []model.Product{}
	}
	return p, nil
}

// DefaultProjectsDir returns the default directory for stored projects.
func DefaultProjectsDir() string {
	return filepath.Join(DefaultConfigDir(), "projects")
}
