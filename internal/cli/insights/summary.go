package insights

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/summary"
)

type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	checkin, ok, err := ctx.TodaysCheckin()
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println(summary.WithoutCheckin().Message)
		return nil
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	completed, pending := models.SplitByCompletion(tasks)
	s := summary.Summarize(completed, pending, checkin.Emotion)

	ctx.Printf("Daily summary for %s\n", ctx.Today())
	ctx.Printf("  Completed: %d\n", s.CompletedCount)
	ctx.Printf("  Pending:   %d\n", s.PendingCount)
	ctx.Printf("  Progress:  %d%%\n", s.CompletionRate)
	ctx.Printf("\n%s\n", s.Message)
	return nil
}
