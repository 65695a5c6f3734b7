package window

import (
	"image/color"
	"strconv"
	"strings"

	"tomato/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	fontSizeTitle  = 50
	fontSizeTimer  = 35
	fontSizeMarks  = 24
	tomatoDiameter = float32(200)
)

// Window is the main timer window. Its setters must be called on the fyne
// goroutine.
type Window struct {
	window      fyne.Window
	titleLabel  *canvas.Text
	timerLabel  *canvas.Text
	checkmarks  *canvas.Text
	startButton *widget.Button
	resetButton *widget.Button
	onStart     func()
	onReset     func()
}

// New creates the main window.
func New(app fyne.App) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(ParseColor(timekeeper.ColorPink))

	titleLabel := canvas.NewText(timekeeper.LabelIdle, ParseColor(timekeeper.ColorGreen))
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Monospace: true}
	titleLabel.TextSize = fontSizeTitle

	tomato := canvas.NewCircle(ParseColor(timekeeper.ColorRed))
	stem := canvas.NewRectangle(ParseColor(timekeeper.ColorGreen))
	stem.SetMinSize(fyne.NewSize(12, 28))

	timerLabel := canvas.NewText(timekeeper.ResetTimerText, color.White)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	timerLabel.TextSize = fontSizeTimer

	checkmarks := canvas.NewText("", ParseColor(timekeeper.ColorGreen))
	checkmarks.Alignment = fyne.TextAlignCenter
	checkmarks.TextSize = fontSizeMarks

	startButton := widget.NewButton("Start", nil)
	resetButton := widget.NewButton("Reset", nil)

	face := container.New(&tomatoLayout{}, tomato, stem, timerLabel)
	buttons := container.NewGridWithColumns(3, startButton, checkmarks, resetButton)
	content := container.NewBorder(titleLabel, buttons, nil, nil, face)
	root := container.NewStack(background, container.NewPadded(content))

	window.SetContent(root)
	window.Resize(fyne.NewSize(420, 420))

	mainWindow := &Window{
		window:      window,
		titleLabel:  titleLabel,
		timerLabel:  timerLabel,
		checkmarks:  checkmarks,
		startButton: startButton,
		resetButton: resetButton,
	}
	startButton.OnTapped = func() {
		if mainWindow.onStart != nil {
			mainWindow.onStart()
		}
	}
	resetButton.OnTapped = func() {
		if mainWindow.onReset != nil {
			mainWindow.onReset()
		}
	}

	return mainWindow
}

// SetOnStart sets the Start button handler.
func (mainWindow *Window) SetOnStart(handler func()) {
	mainWindow.onStart = handler
}

// SetOnReset sets the Reset button handler.
func (mainWindow *Window) SetOnReset(handler func()) {
	mainWindow.onReset = handler
}

// SetCloseIntercept replaces the default close behaviour.
func (mainWindow *Window) SetCloseIntercept(handler func()) {
	mainWindow.window.SetCloseIntercept(handler)
}

// Show displays the window and brings it forward.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
}

// Hide hides the window.
func (mainWindow *Window) Hide() {
	mainWindow.window.Hide()
}

// SetTimerText updates the remaining time.
func (mainWindow *Window) SetTimerText(text string) {
	mainWindow.timerLabel.Text = text
	mainWindow.timerLabel.Refresh()
}

// SetSessionLabel updates the session title.
func (mainWindow *Window) SetSessionLabel(text string, token timekeeper.ColorToken) {
	mainWindow.titleLabel.Text = text
	mainWindow.titleLabel.Color = ParseColor(token)
	mainWindow.titleLabel.Refresh()
}

// SetCheckmarks updates the tally of completed work sessions.
func (mainWindow *Window) SetCheckmarks(text string) {
	mainWindow.checkmarks.Text = text
	mainWindow.checkmarks.Refresh()
}

// ParseColor converts a #rrggbb token. Unknown tokens render white.
func ParseColor(token timekeeper.ColorToken) color.NRGBA {
	value := strings.TrimPrefix(string(token), "#")
	if len(value) != 6 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
		A: 255,
	}
}

// tomatoLayout centers a circle with a stem on top and the timer text inside.
type tomatoLayout struct{}

func (layout *tomatoLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	body := objects[0]
	stem := objects[1]
	timer := objects[2]

	diameter := tomatoDiameter
	if size.Width < diameter {
		diameter = size.Width
	}
	if size.Height*0.85 < diameter {
		diameter = size.Height * 0.85
	}
	if diameter < 0 {
		diameter = 0
	}

	stemSize := stem.MinSize()
	top := (size.Height - diameter - stemSize.Height/2) / 2
	if top < 0 {
		top = 0
	}
	left := (size.Width - diameter) / 2

	stem.Move(fyne.NewPos((size.Width-stemSize.Width)/2, top))
	stem.Resize(stemSize)

	body.Move(fyne.NewPos(left, top+stemSize.Height/2))
	body.Resize(fyne.NewSize(diameter, diameter))

	timerSize := timer.MinSize()
	timer.Move(fyne.NewPos((size.Width-timerSize.Width)/2, top+stemSize.Height/2+(diameter-timerSize.Height)/2))
	timer.Resize(timerSize)
}

func (layout *tomatoLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	timerSize := objects[2].MinSize()
	side := timerSize.Width + 40
	return fyne.NewSize(side, side+objects[1].MinSize().Height/2)
}
