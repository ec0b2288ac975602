package config

import (
	"fmt"
	"strings"
)

// Speed levels map to tick rates in steps of ten.
const (
	DefaultSpeedLevel = 3
	MinSpeedLevel     = 1
	ticksPerLevel     = 10
)

// SpeedPreset is a named speed level.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset converts a string to a SpeedPreset.
// Returns an error for unknown names; an empty string is also an error.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch SpeedPreset(strings.ToLower(strings.TrimSpace(s))) {
	case SpeedSlow:
		return SpeedSlow, nil
	case SpeedNormal:
		return SpeedNormal, nil
	case SpeedFast:
		return SpeedFast, nil
	}
	return "", fmt.Errorf("config: unknown speed preset %q", s)
}

// LevelForPreset returns the speed level of a preset.
func LevelForPreset(p SpeedPreset) int {
	switch p {
	case SpeedSlow:
		return 2
	case SpeedFast:
		return 5
	default:
		return DefaultSpeedLevel
	}
}

// TickRate converts a speed level to ticks per second.
// Levels below the minimum are raised to it.
func TickRate(level int) int {
	return max(level, MinSpeedLevel) * ticksPerLevel
}

// LevelForTickRate converts ticks per second back to a speed level.
func LevelForTickRate(tps int) int {
	return max(tps/ticksPerLevel, MinSpeedLevel)
}

// EffectiveTickRate resolves the configured speed: a valid preset wins,
// otherwise the level is used.
func (s SpeedConfig) EffectiveTickRate() int {
	if s.Preset != "" {
		if p, err := ParseSpeedPreset(s.Preset); err == nil {
			return TickRate(LevelForPreset(p))
		}
	}
	return TickRate(s.Level)
}
