package core

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size it may draw into, the tick rate its simulated clock advances at and
// the seed for its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns the configuration used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports back to the platform after each step.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Simulation time is frozen, e.g. the window is too small
	Exit     bool // Whether the player asked to leave the program
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
