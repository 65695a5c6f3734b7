package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tomato/internal/ui/preferences"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	historyFileName  = "history.db"
	envPrefix        = "tomato"
)

type yamlSettings struct {
	WorkMinutes       int   `yaml:"work_minutes"`
	ShortBreakMinutes int   `yaml:"short_break_minutes"`
	LongBreakMinutes  int   `yaml:"long_break_minutes"`
	SoundEnabled      *bool `yaml:"sound_enabled,omitempty"`
	HistoryEnabled    *bool `yaml:"history_enabled,omitempty"`
	LaunchAtLogin     bool  `yaml:"launch_at_login"`
}

type envSettings struct {
	WorkMinutes       int   `envconfig:"WORK_MINUTES"`
	ShortBreakMinutes int   `envconfig:"SHORT_BREAK_MINUTES"`
	LongBreakMinutes  int   `envconfig:"LONG_BREAK_MINUTES"`
	SoundEnabled      *bool `envconfig:"SOUND"`
	HistoryEnabled    *bool `envconfig:"HISTORY"`
}

// SettingsPath returns the settings file location inside configDir.
func SettingsPath(configDir string) string {
	return filepath.Join(configDir, settingsFileName)
}

// HistoryPath returns the history database location inside configDir.
func HistoryPath(configDir string) string {
	return filepath.Join(configDir, historyFileName)
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	soundEnabled := settings.SoundEnabled
	historyEnabled := settings.HistoryEnabled
	fileData := yamlSettings{
		WorkMinutes:       int(settings.WorkDuration / time.Minute),
		ShortBreakMinutes: int(settings.ShortBreakDuration / time.Minute),
		LongBreakMinutes:  int(settings.LongBreakDuration / time.Minute),
		SoundEnabled:      &soundEnabled,
		HistoryEnabled:    &historyEnabled,
		LaunchAtLogin:     settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ApplyEnv overrides settings with TOMATO_* environment variables.
func ApplyEnv(settings *preferences.Settings) error {
	var envData envSettings
	if err := envconfig.Process(envPrefix, &envData); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if envData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(envData.WorkMinutes) * time.Minute
	}
	if envData.ShortBreakMinutes > 0 {
		settings.ShortBreakDuration = time.Duration(envData.ShortBreakMinutes) * time.Minute
	}
	if envData.LongBreakMinutes > 0 {
		settings.LongBreakDuration = time.Duration(envData.LongBreakMinutes) * time.Minute
	}
	if envData.SoundEnabled != nil {
		settings.SoundEnabled = *envData.SoundEnabled
	}
	if envData.HistoryEnabled != nil {
		settings.HistoryEnabled = *envData.HistoryEnabled
	}
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.HistoryEnabled != nil {
		settings.HistoryEnabled = *fileData.HistoryEnabled
	}

	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
