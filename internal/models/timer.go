package models

import "github.com/julianstephens/flowmind/internal/constants"

type TimerMode string

const (
	ModeFocus      TimerMode = "focus"
	ModeShortBreak TimerMode = "shortBreak"
	ModeLongBreak  TimerMode = "longBreak"
)

func ParseTimerMode(s string) (TimerMode, bool) {
	switch m := TimerMode(s); m {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return m, true
	}
	return "", false
}

type TimerStatus string

const (
	StatusIdle      TimerStatus = "idle"
	StatusRunning   TimerStatus = "running"
	StatusPaused    TimerStatus = "paused"
	StatusCompleted TimerStatus = "completed"
)

// TimerSettings holds the focus timer configuration. Durations are minutes.
type TimerSettings struct {
	FocusDuration          int `json:"focusDuration"`
	ShortBreakDuration     int `json:"shortBreakDuration"`
	LongBreakDuration      int `json:"longBreakDuration"`
	SessionsUntilLongBreak int `json:"sessionsUntilLongBreak"`
}

func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		FocusDuration:          constants.DefaultFocusDuration,
		ShortBreakDuration:     constants.DefaultShortBreakDuration,
		LongBreakDuration:      constants.DefaultLongBreakDuration,
		SessionsUntilLongBreak: constants.DefaultSessionsUntilLongBreak,
	}
}

// DurationSeconds returns the full length of mode in seconds.
func (s TimerSettings) DurationSeconds(mode TimerMode) int {
	switch mode {
	case ModeShortBreak:
		return s.ShortBreakDuration * 60
	case ModeLongBreak:
		return s.LongBreakDuration * 60
	default:
		return s.FocusDuration * 60
	}
}

// TimerState is a snapshot of the focus timer.
type TimerState struct {
	Mode              TimerMode   `json:"mode"`
	Status            TimerStatus `json:"status"`
	RemainingSeconds  int         `json:"remainingSeconds"`
	SessionsCompleted int         `json:"sessionsCompleted"`
}
