package core

import "time"

// RuntimeConfig describes the terminal a view is drawn into.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	EndPause time.Duration // How long a finished round stays on screen
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		EndPause: 500 * time.Millisecond,
	}
}
