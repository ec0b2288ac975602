package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

func init() {
	registry.Register(registry.Program{
		ID:          "rinzler",
		Title:       "Rinzler",
		Strategy:    core.StrategyWanderer,
		Color:       core.ColorRed,
		Description: "Rides straight and turns at random when the way ahead closes",
	})
	registry.Register(registry.Program{
		ID:          "clu",
		Title:       "CLU",
		Strategy:    core.StrategyChaser,
		Color:       core.ColorYellow,
		Description: "Hunts you down along whichever axis you are farthest on",
	})
}

// DefaultProgram is the opponent used when none is configured.
const DefaultProgram = "rinzler"
