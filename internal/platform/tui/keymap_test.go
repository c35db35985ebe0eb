package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sidewalk/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"space", runes(" "), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runes("s"), core.ActionDown},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 4 {
		t.Errorf("ShortHelp has %d bindings", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp has %d columns", len(km.FullHelp()))
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := newHeldKeys(300 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)

	if f := h.Frame(t0.Add(16 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("key should be held right after the press")
	}
	if f := h.Frame(t0.Add(299 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("key should be held inside the hold window")
	}
	if f := h.Frame(t0.Add(400 * time.Millisecond)); !f.Empty() {
		t.Errorf("key should be released after the hold window, got %+v", f)
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := newHeldKeys(300 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionLeft, t0.Add(200*time.Millisecond))

	if f := h.Frame(t0.Add(450 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestHeldKeysOppositeDirectionReleases(t *testing.T) {
	h := newHeldKeys(300 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionLeft, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionRight) || !f.Has(core.ActionLeft) || !f.Has(core.ActionUp) {
		t.Errorf("frame = %+v, expected left and up only", f)
	}
}

func TestHeldKeysPressReachesOneFrame(t *testing.T) {
	h := newHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	if f := h.Frame(t0.Add(time.Second)); !f.Has(core.ActionUp) {
		t.Error("a press must reach the next frame even with no hold")
	}
	if f := h.Frame(t0.Add(2 * time.Second)); !f.Empty() {
		t.Error("a press must not outlive its frame with no hold")
	}
}

func TestHeldKeysIgnoresQuitAndNone(t *testing.T) {
	h := newHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionQuit, t0)
	h.Press(core.ActionNone, t0)

	if f := h.Frame(t0); !f.Empty() {
		t.Errorf("frame = %+v, expected empty", f)
	}
}
