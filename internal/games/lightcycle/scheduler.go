package lightcycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// State is the round state machine.
type State int

const (
	StateRunning  State = iota
	StateHumanWon       // The AI crashed
	StateAIWon          // The human crashed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHumanWon:
		return "human_won"
	case StateAIWon:
		return "ai_won"
	default:
		return "unknown"
	}
}

var (
	// ErrQuit is returned by Tick when the input layer asked to quit.
	// The round is abandoned without scoring.
	ErrQuit = errors.New("lightcycle: quit requested")
	// ErrRoundOver is returned by Tick after the round has ended.
	ErrRoundOver = errors.New("lightcycle: round is over")
	// ErrInvalidSetup is returned when the start cells are unusable.
	ErrInvalidSetup = errors.New("lightcycle: invalid start setup")
)

// Options wires a Scheduler to its collaborators. Nil fields get defaults:
// no input, no sink, a real timer pacer, a fresh score, the planner for the
// configured strategy, DefaultSetup and a discarding logger.
type Options struct {
	Input   InputProvider
	Sink    Sink
	Pacer   Pacer
	Planner Planner
	Score   *Score
	Setup   *Setup
	Logger  *log.Logger
}

// Scheduler runs one round. It owns the grid and both riders for the
// duration of the round and is discarded afterwards; only the Score
// outlives it.
type Scheduler struct {
	cfg     core.SessionConfig
	grid    *Grid
	human   AgentState
	ai      AgentState
	planner Planner
	input   InputProvider
	sink    Sink
	pacer   Pacer
	score   *Score
	logger  *log.Logger

	state  State
	ticks  int
	result RoundResult
}

// NewScheduler prepares a round: both start cells are committed and the
// state is StateRunning.
func NewScheduler(cfg core.SessionConfig, opts Options) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		cfg:     cfg,
		grid:    NewGrid(cfg.GridH, cfg.GridW),
		planner: opts.Planner,
		input:   opts.Input,
		sink:    opts.Sink,
		pacer:   opts.Pacer,
		score:   opts.Score,
		logger:  opts.Logger,
	}

	if s.planner == nil {
		p, err := NewPlanner(cfg.Strategy, rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			return nil, err
		}
		s.planner = p
	}
	if s.input == nil {
		s.input = noInput{}
	}
	if s.sink == nil {
		s.sink = nopSink{}
	}
	if s.pacer == nil {
		s.pacer = TimerPacer{}
	}
	if s.score == nil {
		s.score = &Score{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	setup := DefaultSetup(cfg.GridH, cfg.GridW)
	if opts.Setup != nil {
		setup = *opts.Setup
	}
	if err := s.place(setup); err != nil {
		return nil, err
	}

	s.logger.Debug("round started",
		"grid", fmt.Sprintf("%dx%d", cfg.GridH, cfg.GridW),
		"strategy", cfg.Strategy,
		"human", s.human.Position,
		"ai", s.ai.Position,
	)
	return s, nil
}

// place commits both start cells.
func (s *Scheduler) place(setup Setup) error {
	h, a := setup.Human.Position, setup.AI.Position
	if h == a {
		return fmt.Errorf("%w: both riders start at %v", ErrInvalidSetup, h)
	}
	if !s.grid.InBounds(h) || !s.grid.InBounds(a) {
		return fmt.Errorf("%w: start %v / %v outside %dx%d grid",
			ErrInvalidSetup, h, a, s.grid.Height(), s.grid.Width())
	}

	s.human = setup.Human
	s.ai = setup.AI
	s.human.Alive = true
	s.ai.Alive = true
	s.grid.Commit(h)
	s.grid.Commit(a)
	return nil
}

// Tick runs one simulation step: the human move, the AI move, an optional
// cadence-correction sub-step and the pacing delays. It returns nil when the
// tick completed or ended the round, ErrQuit on a quit signal, ErrRoundOver
// after the round ended, or the context error when cancelled.
func (s *Scheduler) Tick(ctx context.Context) error {
	if s.state != StateRunning {
		return ErrRoundOver
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.ticks++

	alive, err := s.stepHuman(false)
	if err != nil || !alive {
		return err
	}
	if !s.stepAI(false) {
		return nil
	}

	// A character cell is taller than it is wide, so vertical travel looks
	// faster. The rider moving horizontally gets an extra sub-step when the
	// other one moves vertically.
	frame := s.cfg.FrameDuration()
	switch {
	case s.human.Heading.Vertical() && s.ai.Heading.Horizontal():
		if err := s.pacer.Wait(ctx, frame); err != nil {
			return err
		}
		s.logger.Debug("cadence correction", "side", SideAI, "tick", s.ticks)
		if !s.stepAI(true) {
			return nil
		}
		return s.pacer.Wait(ctx, frame)

	case s.human.Heading.Vertical():
		return s.pacer.Wait(ctx, 2*frame)

	case s.ai.Heading.Vertical():
		if err := s.pacer.Wait(ctx, frame); err != nil {
			return err
		}
		s.logger.Debug("cadence correction", "side", SideHuman, "tick", s.ticks)
		alive, err := s.stepHuman(true)
		if err != nil || !alive {
			return err
		}
		return s.pacer.Wait(ctx, frame)

	default:
		return s.pacer.Wait(ctx, frame)
	}
}

// Run ticks until the round ends and returns its result.
func (s *Scheduler) Run(ctx context.Context) (RoundResult, error) {
	for s.state == StateRunning {
		if err := s.Tick(ctx); err != nil {
			return RoundResult{}, err
		}
	}
	return s.result, nil
}

// stepHuman polls the input and moves the human.
func (s *Scheduler) stepHuman(correction bool) (bool, error) {
	intent := s.input.Poll()
	if intent == core.IntentQuit {
		s.logger.Debug("quit requested", "tick", s.ticks)
		return false, ErrQuit
	}
	return s.advance(SideHuman, intent, correction), nil
}

// stepAI plans against the current grid and moves the AI.
func (s *Scheduler) stepAI(correction bool) bool {
	h := s.planner.PlanMove(View{
		Self:     s.ai,
		Opponent: s.human,
		Board:    s.grid,
	})
	return s.advance(SideAI, core.IntentFor(h), correction)
}

// advance resolves, validates and commits one move. It returns false when
// the move ended the round.
func (s *Scheduler) advance(side Side, intent core.Intent, correction bool) bool {
	agent, color := &s.human, s.cfg.HumanColor
	if side == SideAI {
		agent, color = &s.ai, s.cfg.AIColor
	}

	prev := *agent
	heading, cell := Resolve(intent, agent.Heading, agent.Position)

	if err := Validate(cell, s.grid); err != nil {
		agent.Alive = false
		agent.Heading = heading
		s.sink.OnCollision(CollisionEvent{
			Side:    side,
			Cell:    cell,
			Heading: heading,
			Color:   color,
			Err:     err,
		})
		s.end(side.Opponent(), side, err)
		return false
	}

	s.grid.Commit(cell)
	agent.Position = cell
	agent.Heading = heading

	s.sink.OnSegmentDrawn(SegmentEvent{
		Side:        side,
		Cell:        cell,
		Heading:     heading,
		PrevCell:    prev.Position,
		PrevHeading: prev.Heading,
		Color:       color,
		Correction:  correction,
	})
	return true
}

// end records the winner and notifies the sink.
func (s *Scheduler) end(winner, loser Side, cause error) {
	if winner == SideHuman {
		s.state = StateHumanWon
	} else {
		s.state = StateAIWon
	}
	s.score.record(winner)
	s.result = RoundResult{
		Winner: winner,
		Score:  *s.score,
		Ticks:  s.ticks,
	}

	s.logger.Debug("round ended",
		"winner", winner,
		"crashed", loser,
		"cause", cause,
		"ticks", s.ticks,
		"score", fmt.Sprintf("%d-%d", s.score.Human, s.score.AI),
	)
	s.sink.OnRoundEnd(s.result)
}

// State returns the round state.
func (s *Scheduler) State() State {
	return s.state
}

// Human returns the human rider's state.
func (s *Scheduler) Human() AgentState {
	return s.human
}

// AI returns the AI rider's state.
func (s *Scheduler) AI() AgentState {
	return s.ai
}

// Board returns a read-only view of the grid.
func (s *Scheduler) Board() Board {
	return s.grid
}

// Ticks returns the number of ticks started so far.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Result returns the round result; it is zero while the round runs.
func (s *Scheduler) Result() RoundResult {
	return s.result
}

type noInput struct{}

func (noInput) Poll() core.Intent { return core.IntentNone }

type nopSink struct{}

func (nopSink) OnSegmentDrawn(SegmentEvent) {}
func (nopSink) OnCollision(CollisionEvent)  {}
func (nopSink) OnRoundEnd(RoundResult)      {}
