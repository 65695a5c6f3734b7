package cli

import (
	"errors"
	"fmt"
	"log"

	"tomato/internal/core/timekeeper"
	"tomato/internal/platform"
	"tomato/internal/sound"
	"tomato/internal/ui/preferences"
	"tomato/internal/ui/tray"
	"tomato/internal/ui/window"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

func runGUI(opts rootOptions) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			if activateErr := platform.ActivateRunning(appName); activateErr != nil {
				log.Printf("single instance: %v", activateErr)
			}
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	env, err := loadEnvironment(opts)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID("com.tomato.app")
	mainWindow := window.New(fyneApp)

	scheduler := timekeeper.NewLoopScheduler(fyne.Do)
	defer scheduler.Stop()
	controller := timekeeper.New(env.settings.SessionConfig(), mainWindow, scheduler)

	chime := sound.New(env.settings.SoundEnabled)
	closeObservers := env.attachObservers(controller, chime)

	mainWindow.SetOnStart(func() { controller.Start() })
	mainWindow.SetOnReset(controller.Reset)

	prefsWindow := preferences.New(fyneApp, env.settings, func(updated preferences.Settings) {
		if updated.LaunchAtLogin != env.settings.LaunchAtLogin {
			if err := platform.SetAutostart(env.service, appName, updated.LaunchAtLogin); err != nil {
				log.Printf("autostart: %v", err)
			}
		}
		env.saveSettings(updated)
		controller.UpdateConfig(updated.SessionConfig())
		chime.SetEnabled(updated.SoundEnabled)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnStart:       func() { controller.Start() },
			OnReset:       controller.Reset,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		mainWindow.SetCloseIntercept(mainWindow.Hide)

		events := controller.Subscribe(8)
		go func() {
			for event := range events {
				fyne.Do(func() {
					trayManager.HandleEvent(event)
				})
			}
		}()
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	go guard.Serve(func() {
		fyne.Do(mainWindow.Show)
	})

	mainWindow.Show()
	fyneApp.Run()

	controller.Close()
	closeObservers()
	return nil
}
