package recommender

import (
	"testing"
	"time"

	"github.com/julianstephens/flowmind/internal/models"
)

// Saturday afternoon, so "tomorrow" is nine hours away.
var fixedNow = time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)

func TestScore_ExactEnergyMatch(t *testing.T) {
	for _, energy := range []models.EnergyLevel{models.EnergyLow, models.EnergyMedium, models.EnergyHigh} {
		task := models.Task{Energy: energy, Priority: models.PriorityLow}
		got := Score(task, models.EmotionNeutral, energy, fixedNow)
		if got != 3 {
			t.Errorf("energy %s: expected exact match score 3, got %d", energy, got)
		}
	}
}

func TestScore_EnergyMatrix(t *testing.T) {
	tests := []struct {
		current  models.EnergyLevel
		required models.EnergyLevel
		want     int
	}{
		{models.EnergyHigh, models.EnergyHigh, 3},
		{models.EnergyHigh, models.EnergyMedium, 1},
		{models.EnergyHigh, models.EnergyLow, 0},
		{models.EnergyMedium, models.EnergyLow, 1},
		{models.EnergyMedium, models.EnergyMedium, 3},
		{models.EnergyMedium, models.EnergyHigh, 1},
		{models.EnergyLow, models.EnergyLow, 3},
		{models.EnergyLow, models.EnergyMedium, 0},
		{models.EnergyLow, models.EnergyHigh, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"/"+string(tt.required), func(t *testing.T) {
			task := models.Task{Energy: tt.required, Priority: models.PriorityLow}
			if got := Score(task, models.EmotionNeutral, tt.current, fixedNow); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScore_EmotionAdjustment(t *testing.T) {
	tests := []struct {
		name    string
		emotion models.Emotion
		task    models.Task
		want    int
	}{
		// current energy is high in every case; a low task earns no energy points
		{"happy boosts high energy", models.EmotionHappy, models.Task{Energy: models.EnergyHigh, Priority: models.PriorityLow}, 4},
		{"energetic boosts high energy", models.EmotionEnergetic, models.Task{Energy: models.EnergyHigh, Priority: models.PriorityLow}, 4},
		{"happy ignores low energy", models.EmotionHappy, models.Task{Energy: models.EnergyLow, Priority: models.PriorityLow}, 0},
		{"sad boosts low energy", models.EmotionSad, models.Task{Energy: models.EnergyLow, Priority: models.PriorityLow}, 2},
		{"tired boosts low energy", models.EmotionTired, models.Task{Energy: models.EnergyLow, Priority: models.PriorityLow}, 2},
		{"anxious boosts low priority", models.EmotionAnxious, models.Task{Energy: models.EnergyLow, Priority: models.PriorityLow}, 1},
		{"anxious ignores high priority", models.EmotionAnxious, models.Task{Energy: models.EnergyLow, Priority: models.PriorityHigh}, 2},
		{"calm has no adjustment", models.EmotionCalm, models.Task{Energy: models.EnergyHigh, Priority: models.PriorityLow}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.task, tt.emotion, models.EnergyHigh, fixedNow); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScore_PriorityAndPostponement(t *testing.T) {
	tests := []struct {
		name string
		task models.Task
		want int
	}{
		{"low priority", models.Task{Priority: models.PriorityLow}, 0},
		{"medium priority", models.Task{Priority: models.PriorityMedium}, 1},
		{"high priority", models.Task{Priority: models.PriorityHigh}, 2},
		{"postponed twice", models.Task{Priority: models.PriorityLow, PostponedCount: 2}, 2},
		{"postponed pressure is capped", models.Task{Priority: models.PriorityLow, PostponedCount: 9}, 3},
		{"missing postponed count", models.Task{Priority: models.PriorityMedium}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.task.Energy = models.EnergyLow
			if got := Score(tt.task, models.EmotionNeutral, models.EnergyHigh, fixedNow); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScore_DueDateUrgency(t *testing.T) {
	tests := []struct {
		due  string
		want int
	}{
		{"", 0},
		{"not-a-date", 0},
		{"2025-12-01", 3}, // long overdue
		{"2026-01-09", 3},
		{"2026-01-10", 3},
		{"2026-01-11", 3},
		{"2026-01-12", 2},
		{"2026-01-13", 2},
		{"2026-01-14", 1},
		{"2026-01-17", 1},
		{"2026-01-18", 0},
		{"2026-06-01", 0},
	}

	for _, tt := range tests {
		t.Run("due "+tt.due, func(t *testing.T) {
			task := models.Task{Energy: models.EnergyLow, Priority: models.PriorityLow, DueDate: tt.due}
			if got := Score(task, models.EmotionNeutral, models.EnergyHigh, fixedNow); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScore_DueDateUrgencyAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		due  string
		want int
	}{
		// 25 hours away, but still tomorrow.
		{"fall back tomorrow", time.Date(2026, 11, 1, 0, 0, 0, 0, ny), "2026-11-02", 3},
		{"fall back in three days", time.Date(2026, 11, 1, 0, 0, 0, 0, ny), "2026-11-04", 2},
		// 23.5 hours away, but two days out.
		{"spring forward in two days", time.Date(2026, 3, 7, 23, 30, 0, 0, ny), "2026-03-09", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := models.Task{Energy: models.EnergyLow, Priority: models.PriorityLow, DueDate: tt.due}
			if got := Score(task, models.EmotionNeutral, models.EnergyHigh, tt.now); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestScore_HighEnergyHappyPrefersUrgentHighPriority(t *testing.T) {
	a := models.Task{ID: "A", Priority: models.PriorityHigh, Energy: models.EnergyHigh, DueDate: "2026-01-11"}
	b := models.Task{ID: "B", Priority: models.PriorityLow, Energy: models.EnergyLow}

	sa := Score(a, models.EmotionHappy, models.EnergyHigh, fixedNow)
	sb := Score(b, models.EmotionHappy, models.EnergyHigh, fixedNow)
	if sa <= sb {
		t.Errorf("expected A (%d) to outscore B (%d)", sa, sb)
	}
	if sa != 9 {
		t.Errorf("expected A to score 9, got %d", sa)
	}
}
