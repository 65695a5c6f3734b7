package tray

import (
	"fmt"
	"time"

	"tomato/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"
)

const menuTitle = "Tomato"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	resetItem   *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks. A nil app keeps the
// menu state without installing it.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", safe(manager.callbacks.OnStart))
	manager.resetItem = fyne.NewMenuItem("Reset", safe(manager.callbacks.OnReset))
	manager.resetItem.Disabled = true

	manager.refreshStatus()
	return manager
}

// HandleEvent updates the menu from a controller event.
func (manager *Manager) HandleEvent(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventReset:
		manager.SetRunning(false)
		manager.SetStatus("idle")
	case timekeeper.EventSessionStart, timekeeper.EventTick:
		if !manager.running {
			manager.SetRunning(true)
		}
		manager.SetStatus(Status(event.Session, event.Remaining))
	}
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRunning toggles Start/Reset availability.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	manager.startItem.Disabled = running
	manager.resetItem.Disabled = !running
	manager.refreshMenu()
}

// StatusLabel returns the current status line.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

// Status formats a session and its remaining time for the tray.
func Status(session timekeeper.SessionType, remaining time.Duration) string {
	label, _ := timekeeper.Label(session)
	return fmt.Sprintf("%s %s", label, timekeeper.FormatRemaining(int(remaining/time.Second)))
}

func safe(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	if manager.app != nil {
		systray.SetTooltip(fmt.Sprintf("%s: %s", menuTitle, manager.statusLabel))
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", safe(manager.callbacks.OnShow)),
		manager.startItem,
		manager.resetItem,
		fyne.NewMenuItem("Preferences", safe(manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", safe(manager.callbacks.OnQuit)),
	))
}
