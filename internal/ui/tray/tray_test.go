package tray

import (
	"testing"
	"time"

	"tomato/internal/core/timekeeper"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		session   timekeeper.SessionType
		remaining time.Duration
		want      string
	}{
		{timekeeper.SessionWork, 1499 * time.Second, "Work! 24:59"},
		{timekeeper.SessionShortBreak, 5 * time.Second, "Short Break! 0:05"},
		{timekeeper.SessionLongBreak, 20 * time.Minute, "Long Break! 20:00"},
	}
	for _, tt := range tests {
		if got := Status(tt.session, tt.remaining); got != tt.want {
			t.Errorf("Status(%q, %v) = %q, want %q", tt.session, tt.remaining, got, tt.want)
		}
	}
}

func TestManagerHandleEvent(t *testing.T) {
	started := 0
	manager := New(nil, Callbacks{OnStart: func() { started++ }})

	if manager.StatusLabel() != "Status: idle" {
		t.Errorf("initial status = %q", manager.StatusLabel())
	}
	if manager.startItem.Disabled || !manager.resetItem.Disabled {
		t.Error("idle menu should allow Start only")
	}

	manager.startItem.Action()
	if started != 1 {
		t.Errorf("OnStart called %d times", started)
	}

	manager.HandleEvent(timekeeper.Event{Type: timekeeper.EventSessionStart, Session: timekeeper.SessionWork, Remaining: 25 * time.Minute})
	if manager.StatusLabel() != "Status: Work! 25:00" {
		t.Errorf("status = %q", manager.StatusLabel())
	}
	if !manager.startItem.Disabled || manager.resetItem.Disabled {
		t.Error("running menu should allow Reset only")
	}

	manager.HandleEvent(timekeeper.Event{Type: timekeeper.EventReset})
	if manager.StatusLabel() != "Status: idle" || manager.startItem.Disabled {
		t.Errorf("after reset status = %q", manager.StatusLabel())
	}
}

func TestManagerMissingCallbacks(t *testing.T) {
	manager := New(nil, Callbacks{})
	manager.startItem.Action()
	manager.resetItem.Action()
}
