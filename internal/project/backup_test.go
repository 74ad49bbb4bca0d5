package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/libinalum/WH-LayoutDesigner/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := DefaultAppConfig()
	cfg.AddRecentProject("/tmp/dc.json")

	eq := model.NewEquipment("Reach Truck", 20, 8, 12)
	projects := []Project{NewProject("DC East", testFacility(), eq)}

	if err := ExportAllData(path, cfg, projects); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
	if len(backup.Config.RecentProjects) != 1 {
		t.Errorf("expected 1 recent project, got %d", len(backup.Config.RecentProjects))
	}
	if len(backup.Projects) != 1 || backup.Projects[0].Name != "DC East" {
		t.Errorf("expected project DC East, got %+v", backup.Projects)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()

	eq := model.NewEquipment("Reach Truck", 20, 8, 12)
	for _, name := range []string{"DC East", "DC West"} {
		p := NewProject(name, testFacility(), eq)
		if err := Save(filepath.Join(dir, p.ID+".json"), p); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	// A broken file is skipped with a warning, not a failure.
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	// Non-JSON files are ignored entirely.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	projects, warnings := LoadAll(dir)
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning for the broken file, got %d", len(warnings))
	}
}

func TestLoadAllMissingDir(t *testing.T) {
	projects, warnings := LoadAll(filepath.Join(t.TempDir(), "nope"))
	if len(projects) != 0 || len(warnings) != 0 {
		t.Errorf("expected empty result for missing dir, got %d projects, %d warnings", len(projects), len(warnings))
	}
}

func TestRestoreAllDataRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backupFile := filepath.Join(dir, "backup.json")
	configPath := filepath.Join(dir, "restored", "config.json")
	projectsDir := filepath.Join(dir, "restored", "projects")

	cfg := DefaultAppConfig()
	cfg.AddRecentProject("/tmp/dc.json")
	eq := model.NewEquipment("Reach Truck", 20, 8, 12)
	original := NewProject("DC East", testFacility(), eq)

	if err := ExportAllData(backupFile, cfg, []Project{original}); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}
	backup, err := ImportAllData(backupFile)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if err := RestoreAllData(backup, configPath, projectsDir); err != nil {
		t.Fatalf("RestoreAllData failed: %v", err)
	}

	restoredCfg, err := LoadAppConfig(configPath)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if len(restoredCfg.RecentProjects) != 1 {
		t.Errorf("expected 1 recent project, got %d", len(restoredCfg.RecentProjects))
	}

	restored, err := Load(filepath.Join(projectsDir, original.ID+".json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if restored.Name != "DC East" {
		t.Errorf("expected project DC East, got %s", restored.Name)
	}
}

func TestRestoreAllDataRejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	backup := BackupData{
		Version:  "1.0.0",
		Projects: []Project{{Name: "No ID"}},
	}

	err := RestoreAllData(backup, filepath.Join(dir, "config.json"), filepath.Join(dir, "projects"))
	if err == nil {
		t.Fatal("expected error for project without id")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportAllData(path)
	if err == nil {
		t.Fatal("expected error for backup without version")
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
