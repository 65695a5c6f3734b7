package timekeeper

import (
	"sync"
	"time"

	"tomato/internal/core/model"
)

// ResetTimerText is rendered by Reset.
const ResetTimerText = "00:00"

// Display is the surface the controller renders to.
type Display interface {
	TimerDisplay
	SetSessionLabel(text string, color ColorToken)
	SetCheckmarks(text string)
}

// Controller drives the work/break cycle. Its methods, the countdown and the
// display all run on the event loop that executes scheduler callbacks.
type Controller struct {
	config    model.SessionConfig
	display   Display
	scheduler Scheduler
	countdown *Countdown
	state     SessionState
	session   SessionType
	duration  time.Duration
	startedAt time.Time

	mu     sync.Mutex
	events []chan Event
}

// New creates a Controller with the provided configuration.
func New(config model.SessionConfig, display Display, scheduler Scheduler) *Controller {
	config = config.Normalized()
	controller := &Controller{
		config:    config,
		display:   display,
		scheduler: scheduler,
	}
	controller.countdown = NewCountdown(scheduler, display, config.TickInterval, controller.handleCountdownDone)
	controller.countdown.SetOnTick(controller.handleTick)
	return controller
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	controller.events = append(controller.events, ch)
	controller.mu.Unlock()
	return ch
}

// Close cancels the countdown and closes observers.
func (controller *Controller) Close() {
	controller.countdown.Cancel()

	controller.mu.Lock()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// UpdateConfig replaces session durations. The running session keeps its length.
func (controller *Controller) UpdateConfig(config model.SessionConfig) {
	controller.config = config.Normalized()
	controller.countdown.SetInterval(controller.config.TickInterval)
}

// Config returns the active configuration.
func (controller *Controller) Config() model.SessionConfig {
	return controller.config
}

// State returns a snapshot of the session state.
func (controller *Controller) State() SessionState {
	state := controller.state
	state.ActiveTimer = controller.countdown.Handle()
	return state
}

// Session returns the type of the running session, or "" when idle.
func (controller *Controller) Session() SessionType {
	return controller.session
}

// Duration returns the length of the running session.
func (controller *Controller) Duration() time.Duration {
	return controller.duration
}

// Running reports whether a countdown tick is pending.
func (controller *Controller) Running() bool {
	return controller.countdown.State() == CountdownRunning
}

// Start begins the cycle unless a countdown is already running.
func (controller *Controller) Start() bool {
	if controller.Running() {
		return false
	}
	controller.StartNextSession()
	return true
}

// Reset cancels the countdown and restores the initial display.
func (controller *Controller) Reset() {
	controller.countdown.Cancel()
	controller.state = SessionState{}
	controller.session = ""
	controller.duration = 0
	controller.startedAt = time.Time{}

	controller.display.SetTimerText(ResetTimerText)
	controller.display.SetSessionLabel(LabelIdle, ColorGreen)
	controller.display.SetCheckmarks("")

	controller.emit(Event{
		Type: EventReset,
		At:   controller.scheduler.Now(),
	})
}

// StartNextSession advances the repetition count and starts its countdown.
func (controller *Controller) StartNextSession() {
	controller.countdown.Cancel()
	controller.state = controller.state.Advance()

	session := controller.state.Session()
	duration := Duration(session, controller.config)
	seconds := int(duration / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	controller.session = session
	controller.duration = time.Duration(seconds) * time.Second
	controller.startedAt = controller.scheduler.Now()

	text, color := Label(session)
	controller.display.SetSessionLabel(text, color)

	controller.emit(Event{
		Type:       EventSessionStart,
		Session:    session,
		Repetition: controller.state.RepetitionCount,
		Duration:   controller.duration,
		Remaining:  controller.duration,
		Completed:  controller.state.CompletedWorkSessions(),
		StartedAt:  controller.startedAt,
		At:         controller.startedAt,
	})

	controller.countdown.Run(seconds)
}

func (controller *Controller) handleTick(remaining int) {
	controller.emit(Event{
		Type:       EventTick,
		Session:    controller.session,
		Repetition: controller.state.RepetitionCount,
		Duration:   controller.duration,
		Remaining:  time.Duration(remaining) * time.Second,
		Completed:  controller.state.CompletedWorkSessions(),
		StartedAt:  controller.startedAt,
		At:         controller.scheduler.Now(),
	})
}

func (controller *Controller) handleCountdownDone() {
	controller.emit(Event{
		Type:       EventSessionComplete,
		Session:    controller.session,
		Repetition: controller.state.RepetitionCount,
		Duration:   controller.duration,
		Completed:  controller.state.CompletedWorkSessions(),
		StartedAt:  controller.startedAt,
		At:         controller.scheduler.Now(),
	})

	controller.StartNextSession()
	controller.display.SetCheckmarks(Checkmarks(controller.state.CompletedWorkSessions()))
}

func (controller *Controller) emit(event Event) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
