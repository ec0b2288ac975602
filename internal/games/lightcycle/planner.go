package lightcycle

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// View is what the planner sees when choosing the AI's next heading.
type View struct {
	Self     AgentState // The AI rider
	Opponent AgentState // The human rider, after this tick's move
	Board    Board
}

// Planner chooses the AI's next heading. It never fails: when no move
// survives it returns the current heading and leaves the crash to the
// collision check.
type Planner interface {
	PlanMove(v View) core.Heading
}

// NewPlanner builds the planner for a strategy. The planner keeps rng for
// its random choices, so a fixed seed gives a reproducible round.
func NewPlanner(s core.Strategy, rng *rand.Rand) (Planner, error) {
	switch s {
	case core.StrategyWanderer:
		return &Wanderer{rng: rng}, nil
	case core.StrategyChaser:
		return &Chaser{rng: rng}, nil
	}
	return nil, fmt.Errorf("lightcycle: no planner for strategy %v", s)
}

// CandidateMoves returns the headings the AI may take, in canonical order
// Up, Down, Left, Right. The adjacent cell must be valid. A turn must also
// have a valid cell beyond it, so the AI never steers into a one-cell pocket;
// going straight is exempt.
func CandidateMoves(self AgentState, b Board) []core.Heading {
	moves := make([]core.Heading, 0, len(core.Headings))
	for _, d := range core.Headings {
		a := self.Position.Add(d)
		if !valid(a, b) {
			continue
		}
		if d != self.Heading && !valid(a.Add(d), b) {
			continue
		}
		moves = append(moves, d)
	}
	return moves
}

// fallback keeps the current heading when possible, else picks at random.
func fallback(self AgentState, moves []core.Heading, rng *rand.Rand) core.Heading {
	if len(moves) == 0 {
		return self.Heading
	}
	if slices.Contains(moves, self.Heading) {
		return self.Heading
	}
	return moves[rng.Intn(len(moves))]
}

// Wanderer rides straight until blocked, then turns at random.
type Wanderer struct {
	rng *rand.Rand
}

// PlanMove implements Planner.
func (w *Wanderer) PlanMove(v View) core.Heading {
	return fallback(v.Self, CandidateMoves(v.Self, v.Board), w.rng)
}

// Chaser steers toward the human along whichever axis separates them most.
// It is a greedy one-ply heuristic and will sometimes trap itself.
type Chaser struct {
	rng *rand.Rand
}

// PlanMove implements Planner.
func (c *Chaser) PlanMove(v View) core.Heading {
	moves := CandidateMoves(v.Self, v.Board)
	if h, ok := c.steer(v, moves); ok {
		return h
	}
	return fallback(v.Self, moves, c.rng)
}

// steer returns the preferred heading toward the opponent if it is offered.
func (c *Chaser) steer(v View, moves []core.Heading) (core.Heading, bool) {
	cur := v.Self.Heading
	dy := v.Opponent.Position.Row - v.Self.Position.Row
	dx := v.Opponent.Position.Col - v.Self.Position.Col

	offer := func(h core.Heading) (core.Heading, bool) {
		return h, slices.Contains(moves, h)
	}

	if core.Abs(dy) > core.Abs(dx) {
		switch {
		case dy > 0 && cur != core.HeadingUp:
			return offer(core.HeadingDown)
		case dy < 0 && cur != core.HeadingDown:
			return offer(core.HeadingUp)
		case cur != core.HeadingLeft:
			// Sidestep: the way toward the opponent is a reversal.
			return offer(core.HeadingRight)
		default:
			return offer(core.HeadingLeft)
		}
	}

	switch {
	case dx > 0 && cur != core.HeadingLeft:
		return offer(core.HeadingRight)
	case dx < 0 && cur != core.HeadingRight:
		return offer(core.HeadingLeft)
	case cur != core.HeadingUp:
		return offer(core.HeadingDown)
	default:
		return offer(core.HeadingUp)
	}
}
