package recommender

import (
	"time"

	"github.com/julianstephens/flowmind/internal/constants"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/utils"
)

// Score rates how well task fits the user's current emotion and energy.
// Higher is a better fit. It never fails: an absent or malformed due date
// contributes nothing.
func Score(task models.Task, emotion models.Emotion, energy models.EnergyLevel, now time.Time) int {
	score := energyMatch(task.Energy, energy)
	score += emotionAdjustment(task, emotion)
	score += priorityWeight(task.Priority)
	score += min(max(task.PostponedCount, 0), constants.MaxPostponementPressure)
	score += dueDateUrgency(task, now)
	return score
}

func energyMatch(required, current models.EnergyLevel) int {
	switch {
	case required == current:
		return 3
	case current == models.EnergyHigh && required == models.EnergyMedium,
		current == models.EnergyMedium && (required == models.EnergyLow || required == models.EnergyHigh):
		return 1
	case current == models.EnergyLow && required == models.EnergyLow:
		// Shadowed by the exact match above; kept so scores stay as observed.
		return 2
	}
	return 0
}

func emotionAdjustment(task models.Task, emotion models.Emotion) int {
	switch emotion {
	case models.EmotionHappy, models.EmotionEnergetic:
		if task.Energy == models.EnergyHigh {
			return 1
		}
	case models.EmotionSad, models.EmotionTired:
		if task.Energy == models.EnergyLow {
			return 2
		}
	case models.EmotionAnxious:
		if task.Priority == models.PriorityLow {
			return 1
		}
	}
	return 0
}

func priorityWeight(p models.Priority) int {
	switch p {
	case models.PriorityHigh:
		return 2
	case models.PriorityMedium:
		return 1
	}
	return 0
}

func dueDateUrgency(task models.Task, now time.Time) int {
	due, ok := task.Due(now.Location())
	if !ok {
		return 0
	}

	days := utils.CalendarDaysBetween(now, due)
	switch {
	case days <= 1:
		return 3
	case days <= 3:
		return 2
	case days <= 7:
		return 1
	}
	return 0
}
