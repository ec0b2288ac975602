package lightcycle

import (
	"testing"

	"github.com/vovakirdan/lightcycle/internal/core"
)

func TestResolveNeverReverses(t *testing.T) {
	pos := core.Cell{Row: 5, Col: 5}

	for _, h := range core.Headings {
		t.Run(h.String(), func(t *testing.T) {
			heading, cell := Resolve(core.IntentFor(h.Reverse()), h, pos)
			if heading != h {
				t.Errorf("reverse intent changed heading %v to %v", h, heading)
			}
			if cell != pos.Add(h) {
				t.Errorf("reverse intent moved to %v, expected %v", cell, pos.Add(h))
			}
		})
	}
}

func TestResolve(t *testing.T) {
	pos := core.Cell{Row: 5, Col: 5}

	tests := []struct {
		name        string
		intent      core.Intent
		heading     core.Heading
		wantHeading core.Heading
		wantCell    core.Cell
	}{
		{"no input keeps going", core.IntentNone, core.HeadingRight, core.HeadingRight, core.Cell{Row: 5, Col: 6}},
		{"quit keeps going", core.IntentQuit, core.HeadingDown, core.HeadingDown, core.Cell{Row: 6, Col: 5}},
		{"same heading", core.IntentLeft, core.HeadingLeft, core.HeadingLeft, core.Cell{Row: 5, Col: 4}},
		{"turn up", core.IntentUp, core.HeadingRight, core.HeadingUp, core.Cell{Row: 4, Col: 5}},
		{"turn down", core.IntentDown, core.HeadingLeft, core.HeadingDown, core.Cell{Row: 6, Col: 5}},
		{"left against right", core.IntentLeft, core.HeadingRight, core.HeadingRight, core.Cell{Row: 5, Col: 6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			heading, cell := Resolve(tc.intent, tc.heading, pos)
			if heading != tc.wantHeading || cell != tc.wantCell {
				t.Errorf("Resolve(%v, %v) = (%v, %v), expected (%v, %v)",
					tc.intent, tc.heading, heading, cell, tc.wantHeading, tc.wantCell)
			}
		})
	}
}
