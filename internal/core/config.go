package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for seeded randomness.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is the terminal status of a session.
// Exactly one non-running outcome is produced per run.
type Outcome int

const (
	OutcomeRunning   Outcome = iota // Session still in progress
	OutcomeQuit                     // Player asked to quit (clean exit)
	OutcomeDestroyed                // Avatar destroyed; final score is shown
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeQuit:
		return "quit"
	case OutcomeDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Level    int     // Current level
	Tick     int     // Frames simulated so far
	Outcome  Outcome // Terminal outcome, if any
	GameOver bool    // Whether the avatar was destroyed
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
