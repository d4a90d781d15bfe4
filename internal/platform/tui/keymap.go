package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "paddle up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "paddle down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a key message to a paddle direction.
// Returns core.KeyNone for any other key.
func (k KeyMap) Direction(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	}
	return core.KeyNone
}

// keyHold turns terminal key presses into held keys.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until it goes hold frames without a repeat.
type keyHold struct {
	hold int
	left map[core.Key]int
}

func newKeyHold(frames int) *keyHold {
	if frames <= 0 {
		frames = 1
	}
	return &keyHold{hold: frames, left: make(map[core.Key]int)}
}

// Press marks k held. It returns the opposite direction if that was held,
// so the caller can release it.
func (h *keyHold) Press(k core.Key) core.Key {
	h.left[k] = h.hold
	other := opposite(k)
	if _, ok := h.left[other]; ok {
		delete(h.left, other)
		return other
	}
	return core.KeyNone
}

// Tick counts down one frame and returns the keys whose hold expired.
func (h *keyHold) Tick() []core.Key {
	var expired []core.Key
	for _, k := range []core.Key{core.KeyUp, core.KeyDown} {
		n, ok := h.left[k]
		if !ok {
			continue
		}
		if n <= 1 {
			delete(h.left, k)
			expired = append(expired, k)
			continue
		}
		h.left[k] = n - 1
	}
	return expired
}

// Held reports whether k is currently held.
func (h *keyHold) Held(k core.Key) bool {
	_, ok := h.left[k]
	return ok
}

// Reset releases everything without reporting it.
func (h *keyHold) Reset() {
	clear(h.left)
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	}
	return core.KeyNone
}
