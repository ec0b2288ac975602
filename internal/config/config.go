// Package config provides YAML-based configuration loading and speed level
// management for lightcycle.
package config

// Config contains all user-tunable settings.
type Config struct {
	Speed   SpeedConfig   `yaml:"speed"`
	AI      AIConfig      `yaml:"ai"`
	Player  PlayerConfig  `yaml:"player"`
	Grid    GridConfig    `yaml:"grid"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// SpeedConfig defines the simulation rate.
type SpeedConfig struct {
	Level  int    `yaml:"level"`  // Ticks per second = Level * 10
	Preset string `yaml:"preset"` // slow, normal, fast; overrides Level when set
}

// AIConfig selects the opponent.
type AIConfig struct {
	Program string `yaml:"program"`
}

// PlayerConfig defines the human rider.
type PlayerConfig struct {
	Color string `yaml:"color"`
}

// GridConfig fixes the grid size. Zero means use the terminal size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StorageConfig points at the round history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}
