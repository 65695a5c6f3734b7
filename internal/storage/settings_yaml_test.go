package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tomato/internal/ui/preferences"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestSaveThenLoadSettings(t *testing.T) {
	path := SettingsPath(filepath.Join(t.TempDir(), "Tomato"))
	want := preferences.Settings{
		WorkDuration:       50 * time.Minute,
		ShortBreakDuration: 10 * time.Minute,
		LongBreakDuration:  30 * time.Minute,
		SoundEnabled:       false,
		HistoryEnabled:     true,
		LaunchAtLogin:      true,
	}

	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadSettings() = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	content := "work_minutes: 0\nshort_break_minutes: -5\nlong_break_minutes: 15\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	defaults := preferences.DefaultSettings()
	if settings.WorkDuration != defaults.WorkDuration || settings.ShortBreakDuration != defaults.ShortBreakDuration {
		t.Errorf("invalid values applied: %+v", settings)
	}
	if settings.LongBreakDuration != 15*time.Minute {
		t.Errorf("LongBreakDuration = %v, want 15m", settings.LongBreakDuration)
	}
	if !settings.SoundEnabled || !settings.HistoryEnabled {
		t.Errorf("missing toggles should keep defaults: %+v", settings)
	}
}

func TestLoadSettingsInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	if err := os.WriteFile(path, []byte("work_minutes: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() error = nil, want parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TOMATO_WORK_MINUTES", "45")
	t.Setenv("TOMATO_SOUND", "false")

	settings := preferences.DefaultSettings()
	if err := ApplyEnv(&settings); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if settings.WorkDuration != 45*time.Minute {
		t.Errorf("WorkDuration = %v, want 45m", settings.WorkDuration)
	}
	if settings.SoundEnabled {
		t.Error("SoundEnabled = true, want false")
	}
	if settings.ShortBreakDuration != 5*time.Minute || !settings.HistoryEnabled {
		t.Errorf("unset variables changed settings: %+v", settings)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv("TOMATO_WORK_MINUTES", "soon")
	settings := preferences.DefaultSettings()
	if err := ApplyEnv(&settings); err == nil {
		t.Error("ApplyEnv() error = nil, want parse error")
	}
}
