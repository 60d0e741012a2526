package summary

import (
	"testing"

	"github.com/julianstephens/flowmind/internal/models"
)

func checkins(emotions ...models.Emotion) []models.Checkin {
	out := make([]models.Checkin, len(emotions))
	for i, e := range emotions {
		out[i] = models.Checkin{Date: "2026-01-0" + string(rune('1'+i)), Emotion: e, Energy: models.EnergyMedium}
	}
	return out
}

func TestOverall(t *testing.T) {
	done := models.Task{ID: "done", Completed: true}
	open := models.Task{ID: "open"}

	tests := []struct {
		name     string
		tasks    []models.Task
		checkins []models.Checkin
		want     Stats
	}{
		{
			name: "empty",
			want: Stats{},
		},
		{
			name:  "rate rounds to nearest percent",
			tasks: []models.Task{done, open, open},
			want:  Stats{TotalTasks: 3, CompletedTasks: 1, CompletionRate: 33},
		},
		{
			name:  "two of three rounds up",
			tasks: []models.Task{done, done, open},
			want:  Stats{TotalTasks: 3, CompletedTasks: 2, CompletionRate: 67},
		},
		{
			name:  "all completed",
			tasks: []models.Task{done, done},
			want:  Stats{TotalTasks: 2, CompletedTasks: 2, CompletionRate: 100},
		},
		{
			name:     "most common emotion",
			checkins: checkins(models.EmotionCalm, models.EmotionTired, models.EmotionTired),
			want:     Stats{Checkins: 3, TopEmotion: models.EmotionTired},
		},
		{
			name:     "tie goes to the emotion seen first",
			checkins: checkins(models.EmotionSad, models.EmotionHappy, models.EmotionHappy, models.EmotionSad),
			want:     Stats{Checkins: 4, TopEmotion: models.EmotionSad},
		},
		{
			name:     "single check-in",
			tasks:    []models.Task{open},
			checkins: checkins(models.EmotionAnxious),
			want:     Stats{TotalTasks: 1, Checkins: 1, TopEmotion: models.EmotionAnxious},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overall(tt.tasks, tt.checkins); got != tt.want {
				t.Errorf("Overall() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
