package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// maxRecentProjects caps the recent projects list.
const maxRecentProjects = 10

// AppConfig holds user-level application settings that persist across
// sessions.
type AppConfig struct {
	RecentProjects []string `json:"recent_projects"`
	LastExportDir  string   `json:"last_export_dir"`
	LastImportDir  string   `json:"last_import_dir"`
}

// DefaultAppConfig returns the configuration used on first launch.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		RecentProjects: []string{},
	}
}

// AddRecentProject prepends a project path to the recent list, removing
// duplicates and trimming to maxRecentProjects.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.layoutdesigner/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".layoutdesigner")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	// Ensure RecentProjects is never nil
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}
