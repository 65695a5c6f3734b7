package timekeeper

import (
	"strings"
	"testing"
	"time"

	"tomato/internal/core/model"
)

func TestControllerStartsWorkSession(t *testing.T) {
	controller, display, scheduler := newTestController()

	if !controller.Start() {
		t.Fatal("Start() = false on idle controller")
	}

	state := controller.State()
	if state.RepetitionCount != 1 {
		t.Errorf("RepetitionCount = %d, want 1", state.RepetitionCount)
	}
	if state.ActiveTimer == 0 {
		t.Error("ActiveTimer not recorded")
	}
	if display.label != LabelWork || display.color != ColorGreen {
		t.Errorf("label = (%q, %q), want work/green", display.label, display.color)
	}
	if display.timerText() != "25:00" {
		t.Errorf("timer text = %q, want 25:00", display.timerText())
	}

	scheduler.Advance(time.Second)
	if display.timerText() != "24:59" {
		t.Errorf("timer text = %q, want 24:59", display.timerText())
	}
}

func TestControllerStartIgnoredWhileRunning(t *testing.T) {
	controller, _, scheduler := newTestController()
	controller.Start()
	scheduler.Advance(10 * time.Second)

	if controller.Start() {
		t.Error("Start() = true while running")
	}
	if got := controller.State().RepetitionCount; got != 1 {
		t.Errorf("RepetitionCount = %d, want 1", got)
	}
	if scheduler.Pending() != 1 {
		t.Errorf("Pending() = %d, want exactly one tick", scheduler.Pending())
	}
}

func TestControllerStartNextSessionKeepsOneTick(t *testing.T) {
	controller, _, scheduler := newTestController()
	controller.StartNextSession()
	controller.StartNextSession()
	controller.StartNextSession()

	if scheduler.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", scheduler.Pending())
	}
	if got := controller.State().RepetitionCount; got != 3 {
		t.Errorf("RepetitionCount = %d, want 3", got)
	}
}

func TestControllerFullCycle(t *testing.T) {
	controller, display, scheduler := newTestController()
	controller.Start()

	scheduler.Advance(1500 * time.Second)
	if got := controller.State().RepetitionCount; got != 2 {
		t.Fatalf("after work RepetitionCount = %d, want 2", got)
	}
	if controller.Session() != SessionShortBreak || display.label != LabelShortBreak || display.color != ColorYellow {
		t.Errorf("after work session=%q label=(%q, %q)", controller.Session(), display.label, display.color)
	}
	if display.checkmarks != "✓" {
		t.Errorf("checkmarks = %q, want one mark", display.checkmarks)
	}
	if display.timerText() != "5:00" {
		t.Errorf("timer text = %q, want 5:00", display.timerText())
	}

	scheduler.Advance(300 * time.Second)
	if got := controller.State().RepetitionCount; got != 3 {
		t.Fatalf("after break RepetitionCount = %d, want 3", got)
	}
	if display.label != LabelWork {
		t.Errorf("label = %q, want work", display.label)
	}
	if display.checkmarks != "✓" {
		t.Errorf("checkmarks = %q, want one mark", display.checkmarks)
	}

	// work, break, work, break, work remaining before the long break.
	scheduler.Advance((3*1500 + 2*300) * time.Second)
	if got := controller.State().RepetitionCount; got != 8 {
		t.Fatalf("RepetitionCount = %d, want 8", got)
	}
	if controller.Session() != SessionLongBreak || display.label != LabelLongBreak || display.color != ColorRed {
		t.Errorf("session=%q label=(%q, %q), want long break", controller.Session(), display.label, display.color)
	}
	if display.checkmarks != "✓✓✓✓" {
		t.Errorf("checkmarks = %q, want four marks", display.checkmarks)
	}
	if display.timerText() != "20:00" {
		t.Errorf("timer text = %q, want 20:00", display.timerText())
	}

	scheduler.Advance(1200 * time.Second)
	if got := controller.State().RepetitionCount; got != 9 {
		t.Fatalf("after long break RepetitionCount = %d, want 9", got)
	}
	if controller.Session() != SessionWork {
		t.Errorf("session = %q, want work", controller.Session())
	}
}

func TestControllerCheckmarkCountLaw(t *testing.T) {
	controller, display, scheduler := newTestController()
	controller.UpdateConfig(model.SessionConfig{
		Work:       3 * time.Second,
		ShortBreak: 2 * time.Second,
		LongBreak:  4 * time.Second,
	})
	controller.Start()

	for completions := 1; completions <= 20; completions++ {
		remaining := controller.Duration()
		scheduler.Advance(remaining)
		reps := controller.State().RepetitionCount
		if reps != completions+1 {
			t.Fatalf("after %d completions RepetitionCount = %d", completions, reps)
		}
		want := reps / 2
		if got := strings.Count(display.checkmarks, Checkmark); got != want {
			t.Fatalf("reps=%d marks=%d, want %d", reps, got, want)
		}
	}
}

func TestControllerResetIsIdempotent(t *testing.T) {
	controller, display, scheduler := newTestController()
	controller.Start()
	scheduler.Advance(1800 * time.Second)

	controller.Reset()
	first := *display
	first.timerTexts = nil
	first.labels = nil
	firstText := display.timerText()

	controller.Reset()

	if display.timerText() != firstText || firstText != ResetTimerText {
		t.Errorf("timer text = %q after second reset, first %q", display.timerText(), firstText)
	}
	if display.label != first.label || display.label != LabelIdle {
		t.Errorf("label = %q, want %q", display.label, LabelIdle)
	}
	if display.checkmarks != "" || first.checkmarks != "" {
		t.Errorf("checkmarks not cleared: %q", display.checkmarks)
	}
	state := controller.State()
	if state.RepetitionCount != 0 || state.ActiveTimer != 0 {
		t.Errorf("state after reset = %+v", state)
	}
	if scheduler.Pending() != 0 {
		t.Errorf("Pending() = %d after reset", scheduler.Pending())
	}
	if controller.Running() {
		t.Error("Running() = true after reset")
	}
}

func TestControllerResetWithoutTimer(t *testing.T) {
	controller, display, _ := newTestController()
	controller.Reset()
	if display.timerText() != ResetTimerText || display.label != LabelIdle {
		t.Errorf("display after reset = %q / %q", display.timerText(), display.label)
	}
}

func TestControllerResetCancelsPendingTick(t *testing.T) {
	controller, display, scheduler := newTestController()
	controller.Start()
	scheduler.Advance(90 * time.Second)

	controller.Reset()
	rendered := len(display.timerTexts)
	labels := len(display.labels)
	checkCalls := display.checkCalls

	scheduler.Advance(2 * time.Hour)

	if len(display.timerTexts) != rendered || len(display.labels) != labels || display.checkCalls != checkCalls {
		t.Error("display changed after reset")
	}
	if display.timerText() != ResetTimerText {
		t.Errorf("timer text = %q, want %q", display.timerText(), ResetTimerText)
	}
	if got := controller.State().RepetitionCount; got != 0 {
		t.Errorf("RepetitionCount = %d, want 0", got)
	}
}

func TestControllerRestartAfterReset(t *testing.T) {
	controller, display, scheduler := newTestController()
	controller.Start()
	scheduler.Advance(1500 * time.Second)
	controller.Reset()

	controller.Start()
	if got := controller.State().RepetitionCount; got != 1 {
		t.Errorf("RepetitionCount = %d, want 1", got)
	}
	if display.label != LabelWork || display.timerText() != "25:00" {
		t.Errorf("display = %q / %q", display.label, display.timerText())
	}
}

func TestControllerEvents(t *testing.T) {
	controller, _, scheduler := newTestController()
	controller.UpdateConfig(model.SessionConfig{
		Work:       2 * time.Second,
		ShortBreak: time.Second,
		LongBreak:  time.Second,
	})
	events := controller.Subscribe(32)

	controller.Start()
	scheduler.Advance(2 * time.Second)
	controller.Reset()
	controller.Close()

	var types []EventType
	var complete Event
	for event := range events {
		types = append(types, event.Type)
		if event.Type == EventSessionComplete {
			complete = event
		}
	}

	want := []EventType{
		EventSessionStart, EventTick, EventTick, EventTick,
		EventSessionComplete, EventSessionStart, EventTick,
		EventReset,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, types[i], want[i])
		}
	}
	if complete.Session != SessionWork || complete.Repetition != 1 || complete.Duration != 2*time.Second {
		t.Errorf("complete event = %+v", complete)
	}
	if !complete.StartedAt.Equal(testEpoch) || !complete.At.Equal(testEpoch.Add(2*time.Second)) {
		t.Errorf("complete times = %v .. %v", complete.StartedAt, complete.At)
	}
}

func TestControllerUpdateConfigAppliesToNextSession(t *testing.T) {
	controller, display, scheduler := newTestController()
	controller.Start()
	controller.UpdateConfig(model.SessionConfig{Work: time.Minute, ShortBreak: 30 * time.Second, LongBreak: time.Minute})

	if display.timerText() != "25:00" {
		t.Errorf("running session changed: %q", display.timerText())
	}
	scheduler.Advance(1500 * time.Second)
	if display.timerText() != "0:30" {
		t.Errorf("timer text = %q, want 0:30", display.timerText())
	}
}
