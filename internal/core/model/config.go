package model

import "time"

// SessionConfig contains runtime settings for the session controller.
type SessionConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	TickInterval time.Duration
}

// DefaultSessionConfig returns the classic 25/5/20 minute cycle.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Work:         25 * time.Minute,
		ShortBreak:   5 * time.Minute,
		LongBreak:    20 * time.Minute,
		TickInterval: time.Second,
	}
}

// Normalized fills zero or negative fields with defaults.
func (config SessionConfig) Normalized() SessionConfig {
	defaults := DefaultSessionConfig()
	if config.Work <= 0 {
		config.Work = defaults.Work
	}
	if config.ShortBreak <= 0 {
		config.ShortBreak = defaults.ShortBreak
	}
	if config.LongBreak <= 0 {
		config.LongBreak = defaults.LongBreak
	}
	if config.TickInterval <= 0 {
		config.TickInterval = defaults.TickInterval
	}
	return config
}
