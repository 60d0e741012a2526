package models

import (
	"sort"
	"time"

	"github.com/julianstephens/flowmind/internal/constants"
)

type Emotion string

const (
	EmotionHappy     Emotion = "happy"
	EmotionCalm      Emotion = "calm"
	EmotionEnergetic Emotion = "energetic"
	EmotionNeutral   Emotion = "neutral"
	EmotionTired     Emotion = "tired"
	EmotionAnxious   Emotion = "anxious"
	EmotionSad       Emotion = "sad"
)

// Emotions lists every emotion in display order.
var Emotions = []Emotion{
	EmotionHappy,
	EmotionCalm,
	EmotionEnergetic,
	EmotionNeutral,
	EmotionTired,
	EmotionAnxious,
	EmotionSad,
}

func ParseEmotion(s string) (Emotion, bool) {
	for _, e := range Emotions {
		if string(e) == s {
			return e, true
		}
	}
	return "", false
}

// Checkin is a single daily record of self-reported emotion and energy.
type Checkin struct {
	Date    string      `json:"date"` // YYYY-MM-DD format
	Emotion Emotion     `json:"emotion"`
	Energy  EnergyLevel `json:"energy"`
	Notes   string      `json:"notes,omitempty"`
}

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// PeriodStart returns the first day (inclusive) covered by period ending today.
func PeriodStart(period Period, today time.Time) time.Time {
	if period == PeriodMonth {
		return today.AddDate(0, -1, 0)
	}
	return today.AddDate(0, 0, -7)
}

// CheckinsForPeriod filters checkins to those between the period start and
// today, sorted by date ascending.
func CheckinsForPeriod(checkins []Checkin, period Period, today time.Time) []Checkin {
	start := PeriodStart(period, today).Format(constants.DateFormat)
	end := today.Format(constants.DateFormat)

	var out []Checkin
	for _, c := range checkins {
		// YYYY-MM-DD compares lexically
		if c.Date >= start && c.Date <= end {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
