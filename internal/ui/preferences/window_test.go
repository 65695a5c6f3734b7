package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestWindowShowsSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)

	if prefs.workDur.Text != "25" || prefs.shortDur.Text != "5" || prefs.longDur.Text != "20" {
		t.Errorf("entries = %q %q %q", prefs.workDur.Text, prefs.shortDur.Text, prefs.longDur.Text)
	}
	if !prefs.sound.Checked || !prefs.history.Checked || prefs.autostart.Checked {
		t.Errorf("checks = %v %v %v", prefs.sound.Checked, prefs.history.Checked, prefs.autostart.Checked)
	}
}

func TestWindowSaveParsesEntries(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved Settings
	calls := 0
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
		calls++
	})

	prefs.workDur.SetText("50")
	prefs.shortDur.SetText("not a number")
	prefs.longDur.SetText("-4")
	prefs.sound.SetChecked(false)
	prefs.autostart.SetChecked(true)
	test.Tap(prefs.saveButton)

	if calls != 1 {
		t.Fatalf("onSave called %d times", calls)
	}
	if saved.WorkDuration != 50*time.Minute {
		t.Errorf("WorkDuration = %v, want 50m", saved.WorkDuration)
	}
	if saved.ShortBreakDuration != 5*time.Minute || saved.LongBreakDuration != 20*time.Minute {
		t.Errorf("invalid entries changed durations: %v %v", saved.ShortBreakDuration, saved.LongBreakDuration)
	}
	if saved.SoundEnabled || !saved.LaunchAtLogin || !saved.HistoryEnabled {
		t.Errorf("checks = %+v", saved)
	}
	if prefs.Settings() != saved {
		t.Errorf("Settings() = %+v, want %+v", prefs.Settings(), saved)
	}
}

func TestSettingsSessionConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.WorkDuration = 0
	config := settings.SessionConfig()
	if config.Work != 25*time.Minute || config.ShortBreak != 5*time.Minute || config.LongBreak != 20*time.Minute {
		t.Errorf("SessionConfig() = %+v", config)
	}
	if config.TickInterval != time.Second {
		t.Errorf("TickInterval = %v", config.TickInterval)
	}
}
