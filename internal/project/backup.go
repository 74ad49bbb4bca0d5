package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string    `json:"version"`
	CreatedAt string    `json:"created_at"`
	Config    AppConfig `json:"config"`
	Projects  []Project `json:"projects"`
}

// ExportAllData exports the application config and the given projects
// to a single JSON file at the specified path.
func ExportAllData(exportPath string, config AppConfig, projects []Project) error {
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Projects:  projects,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// LoadAll reads every project JSON file in the given directory,
// returning the loaded projects and a warning per file that could not
// be loaded. A missing directory yields an empty result.
func LoadAll(dir string) ([]Project, []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	var projects []Project
	var warnings []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		p, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %s: %v", entry.Name(), err))
			continue
		}
		projects = append(projects, p)
	}
	return projects, warnings
}

// RestoreAllData writes a backup's config to configPath and each
// contained project to projectsDir, keyed by project id.
func RestoreAllData(backup BackupData, configPath, projectsDir string) error {
	if err := SaveAppConfig(configPath, backup.Config); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}
	for _, p := range backup.Projects {
		if p.ID == "" {
			return fmt.Errorf("invalid backup: project %q has no id", p.Name)
		}
		if err := Save(filepath.Join(projectsDir, p.ID+".json"), p); err != nil {
			return fmt.Errorf("failed to restore project %s: %w", p.ID, err)
		}
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported config and projects.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure RecentProjects is never nil
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	return backup, nil
}
