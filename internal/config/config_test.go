package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig disagree:\n yaml:    %+v\n builtin: %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
stages:
  - {platform_count: 3, gap_min: 60, gap_max: 70, block_count_min: 5, block_count_max: 5, normal_ratio: 1, first_platform_gap: 60, water_speed: 5, eel_count: 0}
session:
  lives: 7
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, want custom", src)
	}
	if len(cfg.Stages) != 1 || cfg.Stages[0].PlatformCount != 3 {
		t.Errorf("stages not replaced: %+v", cfg.Stages)
	}
	if cfg.Session.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Session.Lives)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Tuning != world.DefaultTuning() {
		t.Errorf("tuning should fall back to defaults, got %+v", cfg.Tuning)
	}
	if cfg.Session.RespawnDelay != 1.5 {
		t.Errorf("respawn delay = %v, want default 1.5", cfg.Session.RespawnDelay)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("stages: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("stages: []\nsession:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(invalid)
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadFallsBackWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, want embedded", src)
	}
	if len(cfg.Stages) != len(DefaultStages()) {
		t.Errorf("got %d stages", len(cfg.Stages))
	}
}

func TestLoadPrefersLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("session:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceLocal || cfg.Session.Lives != 9 {
		t.Errorf("source=%q lives=%d, want local config with 9 lives", src, cfg.Session.Lives)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no stages", func(c *Config) { c.Stages = nil }, true},
		{"zero gravity", func(c *Config) { c.Tuning.Gravity = 0 }, true},
		{"inverted jump speeds", func(c *Config) { c.Tuning.MaxJumpSpeed = 100 }, true},
		{"anchor out of range", func(c *Config) { c.Tuning.CameraAnchor = 1.5 }, true},
		{"no lives", func(c *Config) { c.Session.Lives = 0 }, true},
		{"bad progression", func(c *Config) { c.Difficulty.Progression.Type = "score" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorListsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stages = nil
	cfg.Session.Lives = -1

	err := cfg.Validate()
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if len(ve.Problems) != 2 {
		t.Errorf("got %d problems, want 2: %v", len(ve.Problems), ve.Problems)
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if got, err := ParsePreset(""); err != nil || got != "" {
		t.Errorf("empty preset should be accepted, got %q, %v", got, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetScalingCoversTableStages(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		scaled bool
	}{
		{DifficultyNormal, true},
		{DifficultyHard, true},
		{DifficultyFixed, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			got := NewDifficultyManager(cfg.Difficulty).StageConfig(cfg.Stages, 1)
			want := cfg.Stages[0]
			if tt.scaled && got.WaterSpeed <= want.WaterSpeed {
				t.Errorf("stage 1 water speed = %v, want scaled above %v", got.WaterSpeed, want.WaterSpeed)
			}
			if !tt.scaled && got != want {
				t.Errorf("stage 1 = %+v, want the table row %+v", got, want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultConfig()

	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Session.Lives != 5 {
		t.Errorf("easy lives = %d, want 5", easy.Session.Lives)
	}
	if easy.Stages[0].WaterSpeed >= base.Stages[0].WaterSpeed {
		t.Errorf("easy water speed %v should be slower than %v", easy.Stages[0].WaterSpeed, base.Stages[0].WaterSpeed)
	}

	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Session.Lives != 2 || hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", hard.Session)
	}

	fixed := DefaultConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	none := DefaultConfig()
	ApplyPreset(&none, "")
	if !reflect.DeepEqual(none, base) {
		t.Error("empty preset changed the config")
	}
}

func TestDifficultyManagerStageConfig(t *testing.T) {
	cfg := DefaultConfig()
	dm := NewDifficultyManager(cfg.Difficulty)
	table := cfg.Stages

	for n := 1; n <= len(table); n++ {
		if got := dm.StageConfig(table, n); got != table[n-1] {
			t.Errorf("stage %d: table entry modified at level 0: %+v", n, got)
		}
	}

	last := table[len(table)-1]
	prevWater := last.WaterSpeed
	for n := len(table) + 1; n <= len(table)+15; n++ {
		got := dm.StageConfig(table, n)
		if got.WaterSpeed < prevWater {
			t.Errorf("stage %d: water speed %v decreased", n, got.WaterSpeed)
		}
		if got.PlatformCount < last.PlatformCount {
			t.Errorf("stage %d: platform count dropped", n)
		}
		prevWater = got.WaterSpeed
	}

	maxed := dm.StageConfig(table, len(table)+cfg.Difficulty.Progression.MaxAt)
	if maxed.WaterSpeed != last.WaterSpeed*(1+cfg.Difficulty.Scaling.WaterSpeedMultiplier) {
		t.Errorf("max difficulty water speed = %v", maxed.WaterSpeed)
	}
	if maxed.GapMax != last.GapMax+cfg.Difficulty.Scaling.GapIncrease {
		t.Errorf("max difficulty gap = %v", maxed.GapMax)
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "stage", MaxAt: 4},
	})
	tests := []struct {
		n    int
		want float64
	}{
		{1, 0.5},
		{10, 0.5},
		{12, 0.75},
		{14, 1.0},
		{40, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.n, 10); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}

	dm = NewDifficultyManager(DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: "none"}})
	if got := dm.Level(50, 10); got != 0.2 {
		t.Errorf("disabled progression level = %v, want initial 0.2", got)
	}
	if got := dm.StageConfig(nil, 3); got != (world.StageConfig{}) {
		t.Errorf("empty table should yield zero config, got %+v", got)
	}
}
