package summary

import (
	"math"

	"github.com/julianstephens/flowmind/internal/models"
)

const (
	MessageHighlyProductive = "Amazing! You had a highly productive day."
	MessageGoodProgress     = "Good job! You completed more than half of your tasks."
	MessageSomeProgress     = "You made progress today, and that is already a win!"
	MessageDifficultDay     = "Today was a difficult day, but tomorrow is a new chance."
	MessageNoTasks          = "No tasks for today. How about adding some for tomorrow?"
	MessageNoCheckin        = "Check in to see a personalized summary."

	SuffixRest      = " Remember that resting is productive too."
	SuffixBreathe   = " Take a deep breath and celebrate every small step."
	SuffixKeepGoing = " Keep up the great energy!"
)

type Summary struct {
	CompletionRate int    `json:"completion_rate"`
	Message        string `json:"message"`
	CompletedCount int    `json:"completed_count"`
	PendingCount   int    `json:"pending_count"`
}

// Summarize derives a completion rate and an encouraging message from the
// day's completed and pending tasks, tuned by the user's emotion.
func Summarize(completed, pending []models.Task, emotion models.Emotion) Summary {
	c, p := len(completed), len(pending)

	rate := 0
	switch {
	case p > 0:
		rate = int(math.Round(float64(c) / float64(c+p) * 100))
	case c > 0:
		rate = 100
	}

	var message string
	switch {
	case rate >= 80:
		message = MessageHighlyProductive
	case rate >= 50:
		message = MessageGoodProgress
	case rate > 0:
		message = MessageSomeProgress
	case p > 0:
		message = MessageDifficultDay
	default:
		message = MessageNoTasks
	}

	return Summary{
		CompletionRate: rate,
		Message:        message + emotionSuffix(emotion),
		CompletedCount: c,
		PendingCount:   p,
	}
}

func emotionSuffix(emotion models.Emotion) string {
	switch emotion {
	case models.EmotionTired, models.EmotionSad:
		return SuffixRest
	case models.EmotionAnxious:
		return SuffixBreathe
	case models.EmotionHappy, models.EmotionEnergetic:
		return SuffixKeepGoing
	}
	return ""
}

// WithoutCheckin is the summary shown before the user has checked in today.
func WithoutCheckin() Summary {
	return Summary{Message: MessageNoCheckin}
}
