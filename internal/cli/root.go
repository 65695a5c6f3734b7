package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "Tomato"

type rootOptions struct {
	configDir string
	noSound   bool
	noHistory bool
}

var options rootOptions

var rootCmd = &cobra.Command{
	Use:   "tomato",
	Short: "Pomodoro work and break timer",
	Long: `tomato alternates 25 minute work sessions with short breaks and a long
break after every fourth work session. Without a subcommand it opens the
desktop window and a tray menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI(options)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&options.configDir, "config", "", "directory holding settings.yaml and history.db")
	rootCmd.PersistentFlags().BoolVar(&options.noSound, "no-sound", false, "disable the session chime")
	rootCmd.PersistentFlags().BoolVar(&options.noHistory, "no-history", false, "do not record completed sessions")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(historyCmd)
}
