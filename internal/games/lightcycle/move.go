package lightcycle

import "github.com/vovakirdan/lightcycle/internal/core"

// Resolve turns an intent into the next heading and cell.
//
// IntentNone, IntentQuit and the exact reverse of the current heading all
// resolve to the current heading, so a trail can never double back onto
// itself.
func Resolve(intent core.Intent, heading core.Heading, pos core.Cell) (core.Heading, core.Cell) {
	next := heading
	if h, ok := intent.Heading(); ok && h != heading.Reverse() {
		next = h
	}
	return next, pos.Add(next)
}
