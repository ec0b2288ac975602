package lightcycle

import (
	"context"
	"time"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// scriptInput returns its intents in order, then IntentNone forever.
type scriptInput struct {
	intents []core.Intent
	polls   int
}

func (in *scriptInput) Poll() core.Intent {
	in.polls++
	if in.polls <= len(in.intents) {
		return in.intents[in.polls-1]
	}
	return core.IntentNone
}

// entry is one recorded engine callback: a segment, a collision, a round end
// or a pacing wait.
type entry struct {
	kind      string
	segment   SegmentEvent
	collision CollisionEvent
	result    RoundResult
	wait      time.Duration
}

// recorder implements Sink and Pacer and keeps every call in order.
type recorder struct {
	log []entry
}

func (r *recorder) OnSegmentDrawn(ev SegmentEvent) {
	r.log = append(r.log, entry{kind: "segment", segment: ev})
}

func (r *recorder) OnCollision(ev CollisionEvent) {
	r.log = append(r.log, entry{kind: "collision", collision: ev})
}

func (r *recorder) OnRoundEnd(res RoundResult) {
	r.log = append(r.log, entry{kind: "end", result: res})
}

func (r *recorder) Wait(ctx context.Context, d time.Duration) error {
	r.log = append(r.log, entry{kind: "wait", wait: d})
	return ctx.Err()
}

// kinds returns the sequence of entry kinds, segments tagged with their side.
func (r *recorder) kinds() []string {
	out := make([]string, 0, len(r.log))
	for _, e := range r.log {
		if e.kind == "segment" {
			out = append(out, "segment:"+e.segment.Side.String())
			continue
		}
		out = append(out, e.kind)
	}
	return out
}

// segments returns recorded segments for one side.
func (r *recorder) segments(side Side) []SegmentEvent {
	var out []SegmentEvent
	for _, e := range r.log {
		if e.kind == "segment" && e.segment.Side == side {
			out = append(out, e.segment)
		}
	}
	return out
}

// reset forgets everything recorded so far.
func (r *recorder) reset() {
	r.log = r.log[:0]
}

func testConfig(h, w int) core.SessionConfig {
	cfg := core.DefaultConfig()
	cfg.GridH = h
	cfg.GridW = w
	cfg.TickRate = 10
	cfg.Seed = 42
	return cfg
}

func agent(row, col int, h core.Heading) AgentState {
	return AgentState{Position: core.Cell{Row: row, Col: col}, Heading: h, Alive: true}
}
