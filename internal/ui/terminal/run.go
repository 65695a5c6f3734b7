package terminal

import (
	"fmt"

	"tomato/internal/core/model"
	"tomato/internal/core/timekeeper"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal timer and blocks until the user quits. Observers
// subscribe through onController before the program starts.
func Run(config model.SessionConfig, onController func(*timekeeper.Controller)) error {
	var program *tea.Program
	scheduler := timekeeper.NewLoopScheduler(func(fn func()) {
		program.Send(callbackMsg(fn))
	})
	defer scheduler.Stop()

	m := NewModel(config, scheduler)
	if onController != nil {
		onController(m.controller)
	}
	defer m.controller.Close()

	program = tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal timer: %w", err)
	}
	return nil
}
