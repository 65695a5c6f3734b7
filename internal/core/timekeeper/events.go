package timekeeper

import "time"

// SessionType is the kind of interval a repetition runs.
type SessionType string

const (
	SessionWork       SessionType = "work"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// ColorToken names a palette entry. Display surfaces map it to a real color.
type ColorToken string

const (
	ColorPink   ColorToken = "#e2979c"
	ColorRed    ColorToken = "#e7305b"
	ColorGreen  ColorToken = "#9bdeac"
	ColorYellow ColorToken = "#f7f5dd"
)

// Label texts shown by the session label.
const (
	LabelIdle       = "Timer"
	LabelWork       = "Work!"
	LabelShortBreak = "Short Break!"
	LabelLongBreak  = "Long Break!"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventSessionStart    EventType = "session_start"
	EventTick            EventType = "tick"
	EventSessionComplete EventType = "session_complete"
	EventReset           EventType = "reset"
)

// Event represents a controller update for observers.
type Event struct {
	Type       EventType
	Session    SessionType
	Repetition int
	Remaining  time.Duration
	Duration   time.Duration
	Completed  int
	StartedAt  time.Time
	At         time.Time
}
