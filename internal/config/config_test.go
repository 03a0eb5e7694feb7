package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want ErrConfigNotFound", err)
	}
	if cfg == nil {
		t.Fatal("missing config file must still yield usable defaults")
	}
	if cfg.OutputDir != "" || cfg.Mode != "" || cfg.Pretty || cfg.Workers != 0 {
		t.Errorf("defaults = %+v, want zero values", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "output_dir: out\nmode: verbose\npretty: true\nworkers: 4\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.Mode != "verbose" || !cfg.Pretty || cfg.Workers != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("mode: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	content := "output_dir: from-file\nmode: light\nworkers: 2\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TWBMETA_OUTPUT_DIR", "from-env")
	t.Setenv("TWBMETA_MODE", "verbose")
	t.Setenv("TWBMETA_WORKERS", "8")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "from-env" || cfg.Mode != "verbose" || cfg.Workers != 8 {
		t.Errorf("cfg = %+v, want environment overrides applied", cfg)
	}
}

func TestEnvAppliesWithoutConfigFile(t *testing.T) {
	t.Setenv("TWBMETA_MODE", "light")
	cfg, err := Load(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want ErrConfigNotFound", err)
	}
	if cfg.Mode != "light" {
		t.Errorf("Mode = %q, want light from environment", cfg.Mode)
	}
}

func TestDotEnvFeedsOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TWBMETA_WORKERS=3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("workers: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TWBMETA_WORKERS", "")
	os.Unsetenv("TWBMETA_WORKERS")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3 from .env", cfg.Workers)
	}
}
