package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the platform loop (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  32,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score
	Words      int  // Words completed this session
	Level      int  // Current level (1-based)
	BestStreak int  // Longest streak this session
	GameOver   bool // Whether the game has ended
	Paused     bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each logical tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the creature advanced this tick
}
