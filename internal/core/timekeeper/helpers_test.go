package timekeeper

import (
	"time"

	"tomato/internal/core/model"
)

var testEpoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type recordingDisplay struct {
	timerTexts []string
	labels     []string
	label      string
	color      ColorToken
	checkmarks string
	checkCalls int
}

func (display *recordingDisplay) SetTimerText(text string) {
	display.timerTexts = append(display.timerTexts, text)
}

func (display *recordingDisplay) SetSessionLabel(text string, color ColorToken) {
	display.labels = append(display.labels, text)
	display.label = text
	display.color = color
}

func (display *recordingDisplay) SetCheckmarks(text string) {
	display.checkmarks = text
	display.checkCalls++
}

func (display *recordingDisplay) timerText() string {
	if len(display.timerTexts) == 0 {
		return ""
	}
	return display.timerTexts[len(display.timerTexts)-1]
}

func newTestController() (*Controller, *recordingDisplay, *ManualScheduler) {
	display := &recordingDisplay{}
	scheduler := NewManualScheduler(testEpoch)
	controller := New(model.DefaultSessionConfig(), display, scheduler)
	return controller, display, scheduler
}
