package lightcycle

import (
	"testing"

	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

func TestProgramsRegistered(t *testing.T) {
	tests := []struct {
		id       string
		strategy core.Strategy
		color    core.Color
	}{
		{"rinzler", core.StrategyWanderer, core.ColorRed},
		{"clu", core.StrategyChaser, core.ColorYellow},
	}
	for _, tt := range tests {
		p, err := registry.Get(tt.id)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.id, err)
		}
		if p.Strategy != tt.strategy || p.Color != tt.color {
			t.Errorf("%s = %v/%v, want %v/%v", tt.id, p.Strategy, p.Color, tt.strategy, tt.color)
		}
		if _, err := NewPlanner(p.Strategy, nil); err != nil {
			t.Errorf("NewPlanner(%v): %v", p.Strategy, err)
		}
	}

	if !registry.Exists(DefaultProgram) {
		t.Errorf("default program %q not registered", DefaultProgram)
	}
}
