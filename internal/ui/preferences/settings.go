package preferences

import (
	"time"

	"tomato/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	SoundEnabled   bool
	HistoryEnabled bool
	LaunchAtLogin  bool
}

// DefaultSettings returns default settings for Tomato.
func DefaultSettings() Settings {
	defaults := model.DefaultSessionConfig()
	return Settings{
		WorkDuration:       defaults.Work,
		ShortBreakDuration: defaults.ShortBreak,
		LongBreakDuration:  defaults.LongBreak,
		SoundEnabled:       true,
		HistoryEnabled:     true,
		LaunchAtLogin:      false,
	}
}

// SessionConfig converts settings to a SessionConfig.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		Work:         settings.WorkDuration,
		ShortBreak:   settings.ShortBreakDuration,
		LongBreak:    settings.LongBreakDuration,
		TickInterval: time.Second,
	}.Normalized()
}
