package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// KeyMap binds terminal keys to game actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Disable key.Binding
	Shield  key.Binding
	Gravity key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows (or hjkl) to move,
// space to fire, E/S/Enter for the three abilities.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Disable: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "disable"),
		),
		Shield: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shield"),
		),
		Gravity: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gravity"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Disable, k.Shield, k.Gravity, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Disable, k.Shield, k.Gravity},
		{k.Pause, k.Restart, k.Quit, k.Help},
	}
}

// Action translates a key message to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fire, core.ActionFire},
		{k.Disable, core.ActionDisable},
		{k.Shield, core.ActionShield},
		{k.Gravity, core.ActionGravity},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Quit, core.ActionQuit},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// opposite pairs movement actions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HoldTracker turns a stream of key events into held actions. Terminals
// report key repeats but no key releases, so an action stays held for a
// fixed number of frames after its last key event.
type HoldTracker struct {
	frames    int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker that keeps actions held for frames
// frames after their last key event.
func NewHoldTracker(frames int) *HoldTracker {
	if frames < 1 {
		frames = 1
	}
	return &HoldTracker{
		frames:    frames,
		remaining: make(map[core.Action]int),
	}
}

// Touch records a key event for a held action. A movement key releases the
// opposite direction immediately.
func (h *HoldTracker) Touch(a core.Action) {
	if opp, ok := opposite[a]; ok {
		delete(h.remaining, opp)
	}
	h.remaining[a] = h.frames
}

// Apply marks every live action as held in frame and counts one frame down.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.remaining)
}
