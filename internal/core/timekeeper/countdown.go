package timekeeper

import "time"

// TimerDisplay receives the rendered remaining time.
type TimerDisplay interface {
	SetTimerText(text string)
}

// CountdownState represents the current Countdown mode.
type CountdownState int

const (
	CountdownIdle CountdownState = iota
	CountdownRunning
	CountdownDone
)

// Countdown ticks a number of seconds down to zero, one tick per interval.
// It never blocks: each tick schedules the next one.
type Countdown struct {
	scheduler Scheduler
	display   TimerDisplay
	interval  time.Duration
	onTick    func(remaining int)
	onDone    func()
	state     CountdownState
	remaining int
	handle    Handle
}

// NewCountdown creates an idle countdown.
func NewCountdown(scheduler Scheduler, display TimerDisplay, interval time.Duration, onDone func()) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		scheduler: scheduler,
		display:   display,
		interval:  interval,
		onDone:    onDone,
	}
}

// SetOnTick sets a callback fired after every rendered tick.
func (countdown *Countdown) SetOnTick(handler func(remaining int)) {
	countdown.onTick = handler
}

// SetInterval changes the delay between ticks, starting with the next one.
func (countdown *Countdown) SetInterval(interval time.Duration) {
	if interval > 0 {
		countdown.interval = interval
	}
}

// Run renders seconds and either schedules the next tick or signals completion.
func (countdown *Countdown) Run(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	countdown.remaining = seconds
	countdown.handle = 0
	countdown.display.SetTimerText(FormatRemaining(seconds))
	if countdown.onTick != nil {
		countdown.onTick(seconds)
	}

	if seconds > 0 {
		countdown.state = CountdownRunning
		var handle Handle
		handle = countdown.scheduler.ScheduleAfter(countdown.interval, func() {
			// Only the tick this countdown is waiting for may advance it.
			if countdown.handle != handle || countdown.state != CountdownRunning {
				return
			}
			countdown.Run(seconds - 1)
		})
		countdown.handle = handle
		return
	}

	countdown.state = CountdownDone
	if countdown.onDone != nil {
		countdown.onDone()
	}
}

// Cancel drops the pending tick, if any, and returns to idle.
func (countdown *Countdown) Cancel() {
	countdown.scheduler.Cancel(countdown.handle)
	countdown.handle = 0
	countdown.state = CountdownIdle
}

// State returns the current countdown mode.
func (countdown *Countdown) State() CountdownState {
	return countdown.state
}

// Remaining returns the last rendered number of seconds.
func (countdown *Countdown) Remaining() int {
	return countdown.remaining
}

// Handle returns the pending tick handle, or zero.
func (countdown *Countdown) Handle() Handle {
	return countdown.handle
}
