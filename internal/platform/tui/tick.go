// Package tui provides the Bubble Tea integration for lightcycle.
// It handles the terminal UI loop, input mapping and round orchestration.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/games/lightcycle"
)

// eventBuffer is how many engine events may queue before the round
// goroutine blocks on the UI.
const eventBuffer = 256

// segmentMsg carries a committed move from the round goroutine.
type segmentMsg lightcycle.SegmentEvent

// collisionMsg carries the move that ended the round.
type collisionMsg lightcycle.CollisionEvent

// roundEndMsg carries the round result and the updated score.
type roundEndMsg lightcycle.RoundResult

// roundDoneMsg is sent once the round goroutine has returned.
// err is nil for a finished round.
type roundDoneMsg struct {
	err error
}

// chanSink forwards engine events to the UI as Bubble Tea messages.
// Sends give up once the round context is cancelled.
type chanSink struct {
	ctx    context.Context
	events chan<- tea.Msg
}

func (s chanSink) send(msg tea.Msg) {
	select {
	case s.events <- msg:
	case <-s.ctx.Done():
	}
}

// OnSegmentDrawn implements lightcycle.Sink.
func (s chanSink) OnSegmentDrawn(ev lightcycle.SegmentEvent) { s.send(segmentMsg(ev)) }

// OnCollision implements lightcycle.Sink.
func (s chanSink) OnCollision(ev lightcycle.CollisionEvent) { s.send(collisionMsg(ev)) }

// OnRoundEnd implements lightcycle.Sink.
func (s chanSink) OnRoundEnd(res lightcycle.RoundResult) { s.send(roundEndMsg(res)) }

// runRound drives a scheduler until the round ends, then reports back.
func runRound(ctx context.Context, s *lightcycle.Scheduler, events chan<- tea.Msg) {
	_, err := s.Run(ctx)
	select {
	case events <- roundDoneMsg{err: err}:
	case <-ctx.Done():
	}
}

// waitForEvent returns a command that delivers the next engine event.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}
