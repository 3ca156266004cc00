package core

// RuntimeConfig contains host settings passed to the game at reset.
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

// GameState is the aggregate status the host needs after every tick.
type GameState struct {
	Level    int  // Current level
	Kills    int  // Enemies killed this run
	GameOver bool // The run ended and awaits acknowledgement
	Quit     bool // The player chose Exit from the menu
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
