package terminal

import (
	"strings"

	"tomato/internal/core/model"
	"tomato/internal/core/timekeeper"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	frameStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(string(timekeeper.ColorPink))).
			Padding(1, 6).
			Align(lipgloss.Center)
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(string(timekeeper.ColorRed))).
			Padding(1, 4)
	marksStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(timekeeper.ColorGreen)))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// callbackMsg carries a scheduler callback onto the bubbletea loop.
type callbackMsg func()

// Surface holds what the controller last rendered.
type Surface struct {
	label      string
	color      timekeeper.ColorToken
	timer      string
	checkmarks string
}

// NewSurface returns a surface in the idle state.
func NewSurface() *Surface {
	return &Surface{
		label: timekeeper.LabelIdle,
		color: timekeeper.ColorGreen,
		timer: timekeeper.ResetTimerText,
	}
}

func (surface *Surface) SetTimerText(text string) {
	surface.timer = text
}

func (surface *Surface) SetSessionLabel(text string, color timekeeper.ColorToken) {
	surface.label = text
	surface.color = color
}

func (surface *Surface) SetCheckmarks(text string) {
	surface.checkmarks = text
}

// Model is the bubbletea model of the terminal timer.
type Model struct {
	surface    *Surface
	controller *timekeeper.Controller
	quitting   bool
}

// NewModel wires a controller to a fresh surface.
func NewModel(config model.SessionConfig, scheduler timekeeper.Scheduler) Model {
	surface := NewSurface()
	return Model{
		surface:    surface,
		controller: timekeeper.New(config, surface, scheduler),
	}
}

// Controller exposes the controller driving this model.
func (m Model) Controller() *timekeeper.Controller {
	return m.controller
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callbackMsg:
		msg()
	case tea.KeyMsg:
		switch msg.String() {
		case "s", "enter":
			m.controller.Start()
		case "r":
			m.controller.Reset()
		case "q", "ctrl+c", "esc":
			m.controller.Reset()
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(m.surface.color))).
		Render(m.surface.label)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(timerStyle.Render(m.surface.timer))
	b.WriteString("\n\n")
	b.WriteString(marksStyle.Render(m.surface.checkmarks))

	return frameStyle.Render(b.String()) + "\n" + helpStyle.Render("s start • r reset • q quit") + "\n"
}
