package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move up
	ActionDown           // Down arrow, j - move down
	ActionLeft           // Left arrow, h - move left
	ActionRight          // Right arrow, l - move right
	ActionFire           // Space - fire beam volleys while held
	ActionDisable        // E - area disable ability
	ActionShield         // S - directional shield ability
	ActionGravity        // Enter - gravity field ability
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionDisable:
		return "Disable"
	case ActionShield:
		return "Shield"
	case ActionGravity:
		return "Gravity"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action is a continuous (held) action rather
// than a one-shot event. Movement and firing are held; everything else fires
// once per key press.
func (a Action) IsHeld() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionFire:
		return true
	}
	return false
}

// InputFrame represents the input state for a single simulation tick.
// Held contains actions whose keys are currently down; Pressed contains
// discrete key-press events that happened since the previous tick.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action for this frame, routing it to Held or Pressed
// depending on the action kind.
func (f *InputFrame) Set(a Action) {
	if a.IsHeld() {
		f.Hold(a)
		return
	}
	f.Press(a)
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press records a one-shot key press event.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Has returns true if the action is held or was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.IsHeld(a) || f.WasPressed(a)
}

// IsHeld returns true if the action's key is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held != nil && f.Held[a]
}

// WasPressed returns true if a press event for the action arrived this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed != nil && f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
