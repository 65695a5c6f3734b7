package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	workDur    *widget.Entry
	shortDur   *widget.Entry
	longDur    *widget.Entry
	sound      *widget.Check
	history    *widget.Check
	autostart  *widget.Check
	saveButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Tomato Settings")

	workDur := widget.NewEntry()
	shortDur := widget.NewEntry()
	longDur := widget.NewEntry()

	sound := widget.NewCheck("Play a chime when a session starts", nil)
	history := widget.NewCheck("Keep a history of completed sessions", nil)
	autostart := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sessions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longDur, widget.NewLabel("min")),
		sound,
		history,
		autostart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 300))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		workDur:    workDur,
		shortDur:   shortDur,
		longDur:    longDur,
		sound:      sound,
		history:    history,
		autostart:  autostart,
		saveButton: saveButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workDur.SetText(formatMinutes(settings.WorkDuration))
	prefs.shortDur.SetText(formatMinutes(settings.ShortBreakDuration))
	prefs.longDur.SetText(formatMinutes(settings.LongBreakDuration))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.history.SetChecked(settings.HistoryEnabled)
	prefs.autostart.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workDur.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortDur.Text); ok {
		settings.ShortBreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longDur.Text); ok {
		settings.LongBreakDuration = time.Duration(minutes) * time.Minute
	}

	settings.SoundEnabled = prefs.sound.Checked
	settings.HistoryEnabled = prefs.history.Checked
	settings.LaunchAtLogin = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatMinutes(value time.Duration) string {
	return fmt.Sprintf("%d", int(value.Minutes()))
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
