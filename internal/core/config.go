package core

// NominalTickRate is the tick rate the simulation's per-tick constants are tuned for.
const NominalTickRate = 60

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: NominalTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickScale returns the number of nominal ticks covered by one real tick.
// Running at 30 ticks per second advances the simulation 2 nominal ticks per Step.
func (c RuntimeConfig) TickScale() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return float64(NominalTickRate) / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Wave     int  // Current asteroid wave (1-based)
	GameOver bool // Whether the game has ended
	Won      bool // Whether the run ended by clearing the field
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
