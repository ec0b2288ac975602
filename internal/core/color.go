package core

import (
	"fmt"
	"strings"
)

// Color is an abstract colour token attached to an agent's trail.
// The platform maps tokens to terminal styles.
type Color uint8

// Predefined colour tokens.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorGray:    "gray",
}

// HumanColors are the trail colours a human player may pick, in picker order.
var HumanColors = []Color{ColorWhite, ColorCyan, ColorBlue}

// String returns the colour name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor resolves a colour name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}
