package checkins

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/flowmind/internal/models"
)

var emotionLabels = map[models.Emotion]string{
	models.EmotionHappy:     "😊 Happy",
	models.EmotionCalm:      "😌 Calm",
	models.EmotionEnergetic: "⚡ Energetic",
	models.EmotionNeutral:   "😐 Neutral",
	models.EmotionTired:     "😴 Tired",
	models.EmotionAnxious:   "😰 Anxious",
	models.EmotionSad:       "😢 Sad",
}

// promptCheckin fills the unset fields of c interactively. Swapped in tests.
var promptCheckin = func(c *models.Checkin) error {
	return newCheckinForm(c).Run()
}

func newCheckinForm(c *models.Checkin) *huh.Form {
	emotionOpts := make([]huh.Option[models.Emotion], 0, len(models.Emotions))
	for _, e := range models.Emotions {
		emotionOpts = append(emotionOpts, huh.NewOption(emotionLabels[e], e))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Emotion]().
				Title("How are you feeling today?").
				Options(emotionOpts...).
				Value(&c.Emotion),
			huh.NewSelect[models.EnergyLevel]().
				Title("Energy level").
				Options(
					huh.NewOption("Low", models.EnergyLow),
					huh.NewOption("Medium", models.EnergyMedium),
					huh.NewOption("High", models.EnergyHigh),
				).
				Value(&c.Energy),
			huh.NewText().
				Title("Notes").
				Description("Optional").
				Value(&c.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}
