package core

// RuntimeConfig contains configuration passed to a frontend at start.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (terminal frontend only)
	ScreenH  int // Terminal height in characters (terminal frontend only)
	TickRate int // Terminal ticks per second; the window follows vsync
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
