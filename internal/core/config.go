package core

// RuntimeConfig contains settings passed to the simulation at initialization.
// They come from CLI flags and override the loaded game configuration.
type RuntimeConfig struct {
	GridSize int   // Side of the square grid, in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridSize: 32,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		ScreenW:  80,
		ScreenH:  40,
	}
}
