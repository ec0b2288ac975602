package lightcycle

import (
	"context"
	"time"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// InputProvider supplies the human's intent. Poll must not block during play:
// it returns core.IntentNone when no key is pending.
type InputProvider interface {
	Poll() core.Intent
}

// SegmentEvent describes one committed move. It carries the previous cell and
// heading so a renderer can draw a corner on the previous cell when the rider
// turned.
type SegmentEvent struct {
	Side        Side
	Cell        core.Cell
	Heading     core.Heading
	PrevCell    core.Cell
	PrevHeading core.Heading
	Color       core.Color
	Correction  bool // true when produced by a cadence-correction sub-step
}

// CollisionEvent describes the move that ended a round.
type CollisionEvent struct {
	Side    Side
	Cell    core.Cell
	Heading core.Heading
	Color   core.Color
	Err     error // ErrOutOfBounds or ErrCellOccupied
}

// RoundResult is reported once when a round ends.
type RoundResult struct {
	Winner Side
	Score  Score // Session score including this round
	Ticks  int   // Completed ticks, including the final one
}

// Sink receives the engine's drawing and scoring events.
type Sink interface {
	OnSegmentDrawn(ev SegmentEvent)
	OnCollision(ev CollisionEvent)
	OnRoundEnd(res RoundResult)
}

// Pacer implements the inter-tick delays. Wait returns early with the
// context's error when ctx is cancelled.
type Pacer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TimerPacer waits on a real timer.
type TimerPacer struct{}

// Wait implements Pacer.
func (TimerPacer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ChanInput is an InputProvider fed from another goroutine (the terminal UI).
// Pending intents are delivered one per poll, in order.
type ChanInput struct {
	ch chan core.Intent
}

// NewChanInput creates an input queue holding up to size pending intents.
func NewChanInput(size int) *ChanInput {
	if size <= 0 {
		size = 1
	}
	return &ChanInput{ch: make(chan core.Intent, size)}
}

// Push queues an intent. When the queue is full the intent is dropped,
// except quit which always gets through.
func (in *ChanInput) Push(i core.Intent) {
	select {
	case in.ch <- i:
		return
	default:
	}
	if i != core.IntentQuit {
		return
	}
	// Make room for the quit signal.
	select {
	case <-in.ch:
	default:
	}
	select {
	case in.ch <- i:
	default:
	}
}

// Poll implements InputProvider.
func (in *ChanInput) Poll() core.Intent {
	select {
	case i := <-in.ch:
		return i
	default:
		return core.IntentNone
	}
}

// Drain discards pending intents, typically between rounds.
func (in *ChanInput) Drain() {
	for {
		select {
		case <-in.ch:
		default:
			return
		}
	}
}
