package core

// Intent is a semantic input for one poll, abstracted from physical key presses.
type Intent int

const (
	IntentNone  Intent = iota // No new input: repeat current heading
	IntentUp                  // Up arrow, k, w
	IntentDown                // Down arrow, j, s
	IntentLeft                // Left arrow, h, a
	IntentRight               // Right arrow, l, d
	IntentQuit                // q, Ctrl+C
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Heading converts a directional intent to a heading.
// The second return value is false for IntentNone and IntentQuit.
func (i Intent) Heading() (Heading, bool) {
	switch i {
	case IntentUp:
		return HeadingUp, true
	case IntentDown:
		return HeadingDown, true
	case IntentLeft:
		return HeadingLeft, true
	case IntentRight:
		return HeadingRight, true
	default:
		return 0, false
	}
}

// IntentFor returns the directional intent for a heading.
func IntentFor(h Heading) Intent {
	switch h {
	case HeadingUp:
		return IntentUp
	case HeadingDown:
		return IntentDown
	case HeadingLeft:
		return IntentLeft
	default:
		return IntentRight
	}
}
