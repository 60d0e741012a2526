package constants

const (
	// Timer settings keys in the settings key-value table
	SettingFocusDuration          = "timer.focus_duration"
	SettingShortBreakDuration     = "timer.short_break_duration"
	SettingLongBreakDuration      = "timer.long_break_duration"
	SettingSessionsUntilLongBreak = "timer.sessions_until_long_break"

	// Default timer settings values (minutes, sessions)
	DefaultFocusDuration          = 25
	DefaultShortBreakDuration     = 5
	DefaultLongBreakDuration      = 15
	DefaultSessionsUntilLongBreak = 4
)
