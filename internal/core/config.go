package core

// RuntimeConfig contains configuration passed to games at initialization.
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
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the run has finished (victory)
	Paused   bool    // Whether the game is waiting for the player to start
	Started  bool    // Whether at least one round was played this run
	Progress float64 // Fraction of the glyph universe unlocked, 0..1
	Rounds   int     // Rounds started this run
	// Timescale is the active duration multiplier
	Timescale float64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
