package checkins

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/utils"
)

type CheckinHistoryCmd struct {
	Period string `short:"p" help:"Period to show (week|month)." default:"week" enum:"week,month"`
}

func (c *CheckinHistoryCmd) Run(ctx *cli.Context) error {
	now := ctx.Clock()
	period := models.Period(c.Period)
	if period != models.PeriodWeek && period != models.PeriodMonth {
		return fmt.Errorf("invalid period: %s", c.Period)
	}

	start := utils.FormatDate(models.PeriodStart(period, now))
	checkins, err := ctx.Store.GetCheckins(start, utils.FormatDate(now))
	if err != nil {
		return fmt.Errorf("failed to get check-ins: %w", err)
	}
	checkins = models.CheckinsForPeriod(checkins, period, now)

	if len(checkins) == 0 {
		ctx.Printf("No check-ins in the last %s\n", period)
		return nil
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	done := completedByDueDate(tasks)

	ctx.Printf("Check-ins for the last %s:\n", period)
	for _, ch := range checkins {
		ctx.Printf("  %s  %-10s %-6s energy  %d task(s) done\n", ch.Date, ch.Emotion, ch.Energy, done[ch.Date])
		if ch.Notes != "" {
			ctx.Printf("              %s\n", ch.Notes)
		}
	}
	return nil
}

// completedByDueDate counts completed tasks per due date.
func completedByDueDate(tasks []models.Task) map[string]int {
	out := make(map[string]int)
	for _, t := range tasks {
		if t.Completed && t.DueDate != "" {
			out[t.DueDate]++
		}
	}
	return out
}
