package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the arena and seed its random source.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frame callbacks per second (default 60)
	Seed     int64 // RNG seed for reproducible rounds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle stage of a round.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhaseEnded   Phase = "ended"
)

// GameState is the observable state of the current round.
// Score and Lives only change at render flushes.
type GameState struct {
	Phase     Phase
	Score     int
	Lives     int
	Processed int
	Total     int
	Paused    bool
}

// GameOver reports whether the round has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Flushed is true when this tick committed pending deltas to the
	// observable state and a render should be requested.
	Flushed bool
}
