package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/flowmind/internal/constants"
)

// MapToTimerSettings converts a map of key-value pairs to TimerSettings.
// Missing, malformed or non-positive values fall back to their defaults.
func MapToTimerSettings(data map[string]string) TimerSettings {
	settings := DefaultTimerSettings()

	for key, value := range data {
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			continue
		}
		switch key {
		case constants.SettingFocusDuration:
			settings.FocusDuration = n
		case constants.SettingShortBreakDuration:
			settings.ShortBreakDuration = n
		case constants.SettingLongBreakDuration:
			settings.LongBreakDuration = n
		case constants.SettingSessionsUntilLongBreak:
			settings.SessionsUntilLongBreak = n
		}
	}
	return settings
}

// TimerSettingsToMap converts TimerSettings to a map of key-value pairs.
func TimerSettingsToMap(settings TimerSettings) map[string]string {
	return map[string]string{
		constants.SettingFocusDuration:          fmt.Sprintf("%d", settings.FocusDuration),
		constants.SettingShortBreakDuration:     fmt.Sprintf("%d", settings.ShortBreakDuration),
		constants.SettingLongBreakDuration:      fmt.Sprintf("%d", settings.LongBreakDuration),
		constants.SettingSessionsUntilLongBreak: fmt.Sprintf("%d", settings.SessionsUntilLongBreak),
	}
}

// ApplyDefaultTimerSettings replaces non-positive values with defaults.
func ApplyDefaultTimerSettings(settings *TimerSettings) {
	if settings.FocusDuration <= 0 {
		settings.FocusDuration = constants.DefaultFocusDuration
	}
	if settings.ShortBreakDuration <= 0 {
		settings.ShortBreakDuration = constants.DefaultShortBreakDuration
	}
	if settings.LongBreakDuration <= 0 {
		settings.LongBreakDuration = constants.DefaultLongBreakDuration
	}
	if settings.SessionsUntilLongBreak <= 0 {
		settings.SessionsUntilLongBreak = constants.DefaultSessionsUntilLongBreak
	}
}
