package core

import "strings"

// Key is a logical key identifier, abstracted from physical key presses.
// Only the two directional keys drive the game; everything else is ignored.
type Key int

const (
	KeyNone Key = iota
	KeyUp       // Up arrow, W
	KeyDown     // Down arrow, S
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// KeyFromName maps a key name as reported by a terminal or window toolkit
// to a logical key, ignoring case. Unrecognised names map to KeyNone.
func KeyFromName(name string) Key {
	switch strings.ToLower(name) {
	case "up", "w", "arrowup":
		return KeyUp
	case "down", "s", "arrowdown":
		return KeyDown
	}
	return KeyNone
}
