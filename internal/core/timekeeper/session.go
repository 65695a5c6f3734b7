package timekeeper

import (
	"fmt"
	"strings"
	"time"

	"tomato/internal/core/model"
)

// Checkmark is the tally mark rendered once per completed work session.
const Checkmark = "✓"

// SessionState is the mutable part of a running cycle.
type SessionState struct {
	RepetitionCount int
	ActiveTimer     Handle
}

// Advance returns the state for the next repetition. The active timer is
// cleared; the caller records the new one once the countdown is scheduled.
func (state SessionState) Advance() SessionState {
	return SessionState{RepetitionCount: state.RepetitionCount + 1}
}

// Session returns the session type of the current repetition.
func (state SessionState) Session() SessionType {
	return SessionTypeFor(state.RepetitionCount)
}

// CompletedWorkSessions returns the tally shown to the user.
func (state SessionState) CompletedWorkSessions() int {
	return CompletedWorkSessions(state.RepetitionCount)
}

// SessionTypeFor derives the session type from a repetition count.
// Every eighth repetition is a long break, other even ones are short breaks.
func SessionTypeFor(repetition int) SessionType {
	switch {
	case repetition%8 == 0:
		return SessionLongBreak
	case repetition%2 == 0:
		return SessionShortBreak
	default:
		return SessionWork
	}
}

// CompletedWorkSessions counts one work session per two repetitions.
func CompletedWorkSessions(repetition int) int {
	if repetition < 0 {
		return 0
	}
	return repetition / 2
}

// Duration maps a session type to its configured length.
func Duration(session SessionType, config model.SessionConfig) time.Duration {
	switch session {
	case SessionLongBreak:
		return config.LongBreak
	case SessionShortBreak:
		return config.ShortBreak
	default:
		return config.Work
	}
}

// Label returns the label text and color for a session type.
func Label(session SessionType) (string, ColorToken) {
	switch session {
	case SessionLongBreak:
		return LabelLongBreak, ColorRed
	case SessionShortBreak:
		return LabelShortBreak, ColorYellow
	default:
		return LabelWork, ColorGreen
	}
}

// FormatRemaining renders seconds as M:SS with unpadded minutes.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Checkmarks renders count tally marks with no separator.
func Checkmarks(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(Checkmark, count)
}
