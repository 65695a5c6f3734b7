package cli

import (
	"tomato/internal/core/timekeeper"
	"tomato/internal/sound"
	"tomato/internal/ui/terminal"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the timer in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(options)
		if err != nil {
			return err
		}

		chime := sound.New(env.settings.SoundEnabled)
		var closeObservers func()
		err = terminal.Run(env.settings.SessionConfig(), func(controller *timekeeper.Controller) {
			closeObservers = env.attachObservers(controller, chime)
		})
		if closeObservers != nil {
			closeObservers()
		}
		return err
	},
}
