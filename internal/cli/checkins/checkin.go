package checkins

import (
	"fmt"
	"strings"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/recommender"
)

// CheckinCmd records today's emotion and energy. Omitted fields are asked
// for interactively.
type CheckinCmd struct {
	Emotion string `short:"m" help:"How you feel (happy|calm|energetic|neutral|tired|anxious|sad)."`
	Energy  string `short:"e" help:"Energy level (low|medium|high)."`
	Notes   string `short:"n" help:"Optional notes."`
}

func (c *CheckinCmd) Run(ctx *cli.Context) error {
	checkin := models.Checkin{
		Date:  ctx.Today(),
		Notes: c.Notes,
	}

	if c.Emotion != "" {
		e, ok := models.ParseEmotion(c.Emotion)
		if !ok {
			return fmt.Errorf("invalid emotion: %s", c.Emotion)
		}
		checkin.Emotion = e
	}
	if c.Energy != "" {
		e, ok := models.ParseEnergyLevel(c.Energy)
		if !ok {
			return fmt.Errorf("invalid energy level: %s", c.Energy)
		}
		checkin.Energy = e
	}

	if checkin.Emotion == "" || checkin.Energy == "" {
		if err := promptCheckin(&checkin); err != nil {
			return fmt.Errorf("check-in cancelled: %w", err)
		}
	}
	checkin.Notes = strings.TrimSpace(checkin.Notes)

	if _, ok := models.ParseEmotion(string(checkin.Emotion)); !ok {
		return fmt.Errorf("an emotion is required")
	}
	if _, ok := models.ParseEnergyLevel(string(checkin.Energy)); !ok {
		return fmt.Errorf("an energy level is required")
	}

	_, existed, err := ctx.TodaysCheckin()
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveCheckin(checkin); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}

	if existed {
		ctx.Printf("Updated today's check-in: %s, %s energy\n", checkin.Emotion, checkin.Energy)
	} else {
		ctx.Printf("Checked in: %s, %s energy\n", checkin.Emotion, checkin.Energy)
	}

	return printRecommendations(ctx, checkin)
}

func printRecommendations(ctx *cli.Context, checkin models.Checkin) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	rec := ctx.Recommender
	if rec == nil {
		rec = recommender.New()
	}
	picks := rec.Recommend(tasks, checkin.Emotion, checkin.Energy, 0)
	if len(picks) == 0 {
		return nil
	}

	ctx.Println("\nRecommended for you right now:")
	for i, t := range picks {
		ctx.Printf("  %d. %s\n", i+1, cli.FormatTask(t))
	}
	return nil
}
