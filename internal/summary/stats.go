package summary

import (
	"math"

	"github.com/julianstephens/flowmind/internal/models"
)

// Stats is the all-time profile view of tasks and check-ins.
type Stats struct {
	TotalTasks     int            `json:"total_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	CompletionRate int            `json:"completion_rate"`
	Checkins       int            `json:"checkins"`
	TopEmotion     models.Emotion `json:"top_emotion,omitempty"`
}

// Overall tallies every task and check-in. TopEmotion is empty without
// check-ins; ties go to the emotion seen first.
func Overall(tasks []models.Task, checkins []models.Checkin) Stats {
	s := Stats{TotalTasks: len(tasks), Checkins: len(checkins)}
	for _, t := range tasks {
		if t.Completed {
			s.CompletedTasks++
		}
	}
	if s.TotalTasks > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedTasks) / float64(s.TotalTasks) * 100))
	}

	counts := make(map[models.Emotion]int)
	var order []models.Emotion
	for _, c := range checkins {
		if counts[c.Emotion] == 0 {
			order = append(order, c.Emotion)
		}
		counts[c.Emotion]++
	}
	best := 0
	for _, e := range order {
		if counts[e] > best {
			best = counts[e]
			s.TopEmotion = e
		}
	}
	return s
}
