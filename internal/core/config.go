package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Strategy selects the AI heuristic for a round.
type Strategy int

const (
	// StrategyWanderer keeps going straight and turns at random when blocked.
	StrategyWanderer Strategy = iota
	// StrategyChaser steers toward the human along the dominant axis.
	StrategyChaser
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyWanderer:
		return "wanderer"
	case StrategyChaser:
		return "chaser"
	default:
		return "unknown"
	}
}

// ParseStrategy resolves a strategy name (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wanderer":
		return StrategyWanderer, nil
	case "chaser":
		return StrategyChaser, nil
	}
	return StrategyWanderer, fmt.Errorf("core: unknown strategy %q", name)
}

// MinGridSize is the smallest allowed grid height or width.
const MinGridSize = 3

// ErrGridTooSmall is returned when the grid cannot host a round.
var ErrGridTooSmall = errors.New("core: grid too small")

// SessionConfig is supplied by the menu layer before a round starts.
// It is read-only for the duration of a round.
type SessionConfig struct {
	GridH      int      // Grid height in cells (terminal rows)
	GridW      int      // Grid width in cells (terminal columns)
	TickRate   int      // Simulation ticks per second
	Strategy   Strategy // AI heuristic
	HumanColor Color    // Human trail colour token
	AIColor    Color    // AI trail colour token
	Seed       int64    // RNG seed for the AI planner (0 = time based, set by platform)
}

// DefaultConfig returns a SessionConfig with sensible defaults.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		GridH:      24,
		GridW:      80,
		TickRate:   30,
		Strategy:   StrategyWanderer,
		HumanColor: ColorCyan,
		AIColor:    ColorRed,
	}
}

// FrameDuration returns the length of one pacing frame.
func (c SessionConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// Validate checks the configuration.
func (c SessionConfig) Validate() error {
	if c.GridH < MinGridSize || c.GridW < MinGridSize {
		return fmt.Errorf("%w: %dx%d", ErrGridTooSmall, c.GridH, c.GridW)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("core: tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}
