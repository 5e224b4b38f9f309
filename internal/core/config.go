package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the terminal loop
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means seed from the clock
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int  // 1-based index of the level being played
	Levels   int  // Number of levels in the session
	Coins    int  // Coins left in the current level
	Lives    int  // Lives remaining
	GameOver bool // Out of lives; waiting for a restart
	Complete bool // Every level has been won
	Paused   bool // Whether the game is paused
}

// Finished reports whether the session has ended, by losing or by winning.
func (s GameState) Finished() bool {
	return s.GameOver || s.Complete
}

// StepResult is returned by Game.Advance() after each frame.
type StepResult struct {
	State GameState
}
