package insights

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/summary"
)

// StatsCmd prints all-time totals across every task and check-in.
type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	checkins, err := ctx.Store.GetCheckins("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get check-ins: %w", err)
	}

	s := summary.Overall(tasks, checkins)
	top := "none yet"
	if s.TopEmotion != "" {
		top = string(s.TopEmotion)
	}

	ctx.Println("Your stats")
	ctx.Printf("  Tasks completed:      %d of %d\n", s.CompletedTasks, s.TotalTasks)
	ctx.Printf("  Completion rate:      %d%%\n", s.CompletionRate)
	ctx.Printf("  Check-ins:            %d\n", s.Checkins)
	ctx.Printf("  Most common emotion:  %s\n", top)
	return nil
}
