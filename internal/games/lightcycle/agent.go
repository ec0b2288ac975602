package lightcycle

import "github.com/vovakirdan/lightcycle/internal/core"

// Side identifies one of the two riders.
type Side int

const (
	SideHuman Side = iota
	SideAI
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideAI
	}
	return SideHuman
}

// AgentState is a rider's head position and direction of travel.
type AgentState struct {
	Position core.Cell
	Heading  core.Heading
	Alive    bool
}

// Score counts round wins for the whole session.
// The caller owns it and threads it through every round.
type Score struct {
	Human int
	AI    int
}

// record credits the winner of a round.
func (s *Score) record(winner Side) {
	if winner == SideHuman {
		s.Human++
	} else {
		s.AI++
	}
}

// Setup holds the start state of both riders.
type Setup struct {
	Human AgentState
	AI    AgentState
}

// startOffset is the classic horizontal distance of each rider from centre.
const startOffset = 30

// DefaultSetup places the human right of centre heading Left and the AI left
// of centre heading Right, on the middle row. The offset shrinks on narrow
// grids so both riders start inside the playable area.
func DefaultSetup(height, width int) Setup {
	row := height / 2
	centre := width / 2
	off := min(startOffset, (width-2)/4)

	return Setup{
		Human: AgentState{
			Position: core.Cell{Row: row, Col: centre + off},
			Heading:  core.HeadingLeft,
			Alive:    true,
		},
		AI: AgentState{
			Position: core.Cell{Row: row, Col: centre - off},
			Heading:  core.HeadingRight,
			Alive:    true,
		},
	}
}
