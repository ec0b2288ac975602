package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTickRate(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-1, 10},
		{0, 10},
		{1, 10},
		{3, 30},
		{6, 60},
	}
	for _, tt := range tests {
		if got := TickRate(tt.level); got != tt.want {
			t.Errorf("TickRate(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelForTickRate(t *testing.T) {
	tests := []struct {
		tps  int
		want int
	}{
		{5, 1},
		{10, 1},
		{30, 3},
		{45, 4},
	}
	for _, tt := range tests {
		if got := LevelForTickRate(tt.tps); got != tt.want {
			t.Errorf("LevelForTickRate(%d) = %d, want %d", tt.tps, got, tt.want)
		}
	}
}

func TestParseSpeedPreset(t *testing.T) {
	if p, err := ParseSpeedPreset(" Fast "); err != nil || p != SpeedFast {
		t.Errorf("ParseSpeedPreset(Fast) = %q, %v", p, err)
	}
	if _, err := ParseSpeedPreset("ludicrous"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := ParseSpeedPreset(""); err == nil {
		t.Error("expected error for empty preset")
	}
}

func TestEffectiveTickRate(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpeedConfig
		want int
	}{
		{"level only", SpeedConfig{Level: 4}, 40},
		{"preset wins", SpeedConfig{Level: 4, Preset: "slow"}, 20},
		{"bad preset falls back", SpeedConfig{Level: 4, Preset: "warp"}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.EffectiveTickRate(); got != tt.want {
				t.Errorf("EffectiveTickRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("speed:\n  level: 5\nai:\n  program: clu\nplayer:\n  color: blue\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Speed.Level != 5 {
		t.Errorf("Speed.Level = %d, want 5", cfg.Speed.Level)
	}
	if cfg.AI.Program != "clu" {
		t.Errorf("AI.Program = %q, want clu", cfg.AI.Program)
	}
	if cfg.Player.Color != "blue" {
		t.Errorf("Player.Color = %q, want blue", cfg.Player.Color)
	}
	// Unset keys keep their defaults.
	if cfg.Storage.Path != DefaultConfig().Storage.Path {
		t.Errorf("Storage.Path = %q, want default", cfg.Storage.Path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if wd, err := os.Getwd(); err != nil {
		t.Fatal(err)
	} else {
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Speed.Level != DefaultSpeedLevel {
		t.Errorf("Speed.Level = %d, want %d", cfg.Speed.Level, DefaultSpeedLevel)
	}
	if cfg.AI.Program != "rinzler" {
		t.Errorf("AI.Program = %q, want rinzler", cfg.AI.Program)
	}
	if cfg.Speed.EffectiveTickRate() != 30 {
		t.Errorf("EffectiveTickRate() = %d, want 30", cfg.Speed.EffectiveTickRate())
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if wd, err := os.Getwd(); err != nil {
		t.Fatal(err)
	} else {
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(home, ".lightcycle")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("speed:\n  preset: fast\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Speed.EffectiveTickRate(); got != 50 {
		t.Errorf("EffectiveTickRate() = %d, want 50", got)
	}
}
