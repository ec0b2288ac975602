package config

import (
	_ "embed"
)

//go:embed defaults/lightcycle.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Speed: SpeedConfig{
			Level: DefaultSpeedLevel,
		},
		AI: AIConfig{
			Program: "rinzler",
		},
		Player: PlayerConfig{
			Color: "cyan",
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.lightcycle/rounds.db",
		},
	}
}
