package cli

import (
	"context"
	"log"

	"tomato/internal/core/timekeeper"
	"tomato/internal/platform"
	"tomato/internal/sound"
	"tomato/internal/storage"
	"tomato/internal/ui/preferences"

	"github.com/google/uuid"
)

// environment is the loaded configuration shared by every command.
type environment struct {
	configDir string
	settings  preferences.Settings
	service   platform.Service
}

func loadEnvironment(opts rootOptions) (*environment, error) {
	service := platform.NewService()
	configDir := opts.configDir
	if configDir == "" {
		dir, err := service.AppConfigDir(appName)
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	settings, err := storage.LoadSettings(storage.SettingsPath(configDir))
	if err != nil {
		log.Printf("settings: %v", err)
	}
	if err := storage.ApplyEnv(&settings); err != nil {
		log.Printf("settings: %v", err)
	}
	if opts.noSound {
		settings.SoundEnabled = false
	}
	if opts.noHistory {
		settings.HistoryEnabled = false
	}

	return &environment{
		configDir: configDir,
		settings:  settings,
		service:   service,
	}, nil
}

func (env *environment) saveSettings(settings preferences.Settings) {
	env.settings = settings
	if err := storage.SaveSettings(storage.SettingsPath(env.configDir), settings); err != nil {
		log.Printf("settings: %v", err)
	}
}

// attachObservers subscribes the chime and history recorder. The returned
// function closes the history database.
func (env *environment) attachObservers(controller *timekeeper.Controller, chime *sound.Chime) func() {
	go chime.Listen(controller.Subscribe(4))

	if !env.settings.HistoryEnabled {
		return func() {}
	}
	history, err := storage.OpenHistory(storage.HistoryPath(env.configDir))
	if err != nil {
		log.Printf("history: %v", err)
		return func() {}
	}

	runID := uuid.NewString()
	done := make(chan struct{})
	events := controller.Subscribe(16)
	go func() {
		defer close(done)
		history.RecordEvents(context.Background(), runID, events)
	}()

	return func() {
		<-done
		if err := history.Close(); err != nil {
			log.Printf("history: %v", err)
		}
	}
}
