package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	var cfg WordSnakeConfig
	if err := yaml.Unmarshal(defaultWordSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultWordSnakeConfig() {
		t.Errorf("embedded YAML and DefaultWordSnakeConfig() differ:\n%+v\n%+v", cfg, DefaultWordSnakeConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("speed:\n  start_ms: 300\ngrid:\n  cell_size: 20\n  field_size: 410\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWordSnake(path)
	if err != nil {
		t.Fatalf("LoadWordSnake() failed: %v", err)
	}
	if cfg.Speed.StartMS != 300 {
		t.Errorf("StartMS = %d, want 300", cfg.Speed.StartMS)
	}
	// Unset values fall back to defaults
	if cfg.Speed.FloorMS != 80 || cfg.Tiles.Max != 20 {
		t.Errorf("missing values not defaulted: %+v", cfg)
	}
	// Field trimmed to a whole number of cells
	if cfg.Grid.FieldSize != 400 {
		t.Errorf("FieldSize = %d, want 400", cfg.Grid.FieldSize)
	}
	if cfg.Grid.StartX%cfg.Grid.CellSize != 0 || cfg.Grid.StartY%cfg.Grid.CellSize != 0 {
		t.Errorf("start (%d,%d) not aligned to cell %d", cfg.Grid.StartX, cfg.Grid.StartY, cfg.Grid.CellSize)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadWordSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWordSnake(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestCurve(t *testing.T) {
	c := NewCurve(DefaultWordSnakeConfig())

	intervals := []struct {
		level int
		want  time.Duration
	}{
		{1, 200 * time.Millisecond},
		{2, 175 * time.Millisecond},
		{5, 100 * time.Millisecond},
		{6, 80 * time.Millisecond}, // 75 floored
		{20, 80 * time.Millisecond},
	}
	for _, tt := range intervals {
		if got := c.Interval(tt.level); got != tt.want {
			t.Errorf("Interval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}

	counts := []struct {
		level     int
		tiles     int
		obstacles int
	}{
		{1, 12, 3},
		{2, 13, 3},
		{3, 13, 4},
		{16, 20, 8},
		{40, 20, 15},
	}
	for _, tt := range counts {
		if got := c.TileTarget(tt.level); got != tt.tiles {
			t.Errorf("TileTarget(%d) = %d, want %d", tt.level, got, tt.tiles)
		}
		if got := c.ObstacleCount(tt.level); got != tt.obstacles {
			t.Errorf("ObstacleCount(%d) = %d, want %d", tt.level, got, tt.obstacles)
		}
	}
}
