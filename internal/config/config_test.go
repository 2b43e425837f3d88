package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.World.Width != 1000 {
		t.Errorf("expected domain width 1000, got %v", cfg.World.Width)
	}
	if cfg.World.Height != 1000 {
		t.Errorf("expected domain height 1000, got %v", cfg.World.Height)
	}
	if cfg.World.Points != 0 {
		t.Errorf("expected points 0 (derive from area), got %d", cfg.World.Points)
	}
	if cfg.World.Seed != 0 {
		t.Errorf("expected seed 0 (random), got %d", cfg.World.Seed)
	}

	if cfg.Graphics.WindowWidth != 1000 || cfg.Graphics.WindowHeight != 1000 {
		t.Errorf("expected 1000x1000 window, got %dx%d",
			cfg.Graphics.WindowWidth, cfg.Graphics.WindowHeight)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if !cfg.Graphics.ShowHUD {
		t.Error("expected show_hud to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terramap.yaml")

	yamlContent := `
world:
  width: 2000
  height: 1500
  points: 4000
  seed: 99

graphics:
  window_width: 1280
  window_height: 720
  vsync: false
  fps_limit: 144

logging:
  level: debug
  log_file: terramap.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.World.Width != 2000 || cfg.World.Height != 1500 {
		t.Errorf("expected 2000x1500 domain, got %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Points != 4000 {
		t.Errorf("expected 4000 points, got %d", cfg.World.Points)
	}
	if cfg.World.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.World.Seed)
	}
	if cfg.Graphics.WindowWidth != 1280 || cfg.Graphics.WindowHeight != 720 {
		t.Errorf("expected 1280x720 window, got %dx%d",
			cfg.Graphics.WindowWidth, cfg.Graphics.WindowHeight)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false after load")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "terramap.log" {
		t.Errorf("expected log file 'terramap.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terramap.yaml")

	yamlContent := `
world:
  seed: 7
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.World.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.World.Seed)
	}
	if cfg.World.Width != 1000 {
		t.Errorf("expected default width kept, got %v", cfg.World.Width)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level kept, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/terramap.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
