package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"plates/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Error(err)
		}
	})
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plates.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "max_depth: 256\nmax_steps: 10000\nseed: 42\ndebug: true\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.MaxDepth != 256 {
		t.Errorf("expected max_depth 256, got %d", cfg.MaxDepth)
	}
	if cfg.MaxSteps != 10000 {
		t.Errorf("expected max_steps 10000, got %d", cfg.MaxSteps)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if !cfg.Debug {
		t.Error("expected debug true")
	}
	if cfg.NoColor {
		t.Error("expected no_color false")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "max_depth: [oops\n")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadNegativeLimit(t *testing.T) {
	path := writeFile(t, "max_depth: -1\n")

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != (config.Config{}) {
		t.Errorf("expected a zero config, got %+v", cfg)
	}
}

func TestLoadDefaultWithFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("seed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := config.LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 9 {
		t.Errorf("expected seed 9, got %d", cfg.Seed)
	}
}
