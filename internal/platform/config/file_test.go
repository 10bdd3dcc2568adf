package config

import (
	"os"
	"path/filepath"
	"testing"
)

type fileTestConfig struct {
	StoragePath string `yaml:"storage_path"`
	Name        string `yaml:"name"`
}

func TestApplyFileSparseOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte("storage_path: /var/lib/planner.db\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg := fileTestConfig{StoragePath: "default.db", Name: "keep-me"}
	if err := ApplyFile(path, &cfg); err != nil {
		t.Fatalf("apply file: %v", err)
	}
	if cfg.StoragePath != "/var/lib/planner.db" {
		t.Fatalf("expected overlay value, got %q", cfg.StoragePath)
	}
	if cfg.Name != "keep-me" {
		t.Fatalf("expected absent key to keep value, got %q", cfg.Name)
	}
}

func TestApplyFileMissing(t *testing.T) {
	var cfg fileTestConfig
	if err := ApplyFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte("storage_path: [\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	var cfg fileTestConfig
	if err := ApplyFile(path, &cfg); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
