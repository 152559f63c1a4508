package config

import (
	"fmt"
	"time"
)

const (
	DefaultFrameDelay  = 30 * time.Millisecond
	DefaultSettleDelay = 90 * time.Millisecond
	DefaultMinColors   = 256
)

// Config holds the fixed timings of the rain loop. Nothing here is user
// settable; the values are the tuned defaults.
type Config struct {
	// FrameDelay is the pause between two frames.
	FrameDelay time.Duration
	// SettleDelay absorbs bursts of resize events before regenerating.
	SettleDelay time.Duration
	// MinColors is the palette size the display must support.
	MinColors int
}

func DefaultConfig() *Config {
	return &Config{
		FrameDelay:  DefaultFrameDelay,
		SettleDelay: DefaultSettleDelay,
		MinColors:   DefaultMinColors,
	}
}

func (c *Config) Validate() error {
	if c.FrameDelay <= 0 {
		return fmt.Errorf("config: frame delay must be positive, got %v", c.FrameDelay)
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("config: settle delay must not be negative, got %v", c.SettleDelay)
	}
	if c.MinColors <= 0 {
		return fmt.Errorf("config: min colors must be positive, got %d", c.MinColors)
	}
	return nil
}
