package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sidewalk/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Down       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " ", "space"),
			key.WithHelp("↑/w/space", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	}
	return core.ActionNone
}

// heldKeys emulates key state from press events. Terminals do not report
// releases, so a key counts as held until hold has passed since its last
// press or auto-repeat. A press always reaches at least one frame.
type heldKeys struct {
	hold  time.Duration
	until map[core.Action]time.Time
	fresh core.InputFrame
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// Press marks an action as held from now. Pressing a direction releases
// the opposite one.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone || a == core.ActionQuit {
		return
	}

	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
		h.fresh.Release(core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
		h.fresh.Release(core.ActionLeft)
	}

	h.until[a] = now.Add(h.hold)
	h.fresh.Set(a)
}

// Frame returns the actions held at the given time and forgets expired ones.
func (h *heldKeys) Frame(now time.Time) core.InputFrame {
	f := h.fresh
	h.fresh.Clear()
	for a, until := range h.until {
		if now.Before(until) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return f
}
