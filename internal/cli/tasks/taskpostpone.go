package tasks

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/constants"
)

type TaskPostponeCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (c *TaskPostponeCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task: %w", err)
	}

	task.Postpone(ctx.Clock())
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	ctx.Printf("Postponed %s to %s\n", task.Title, task.DueDate)
	if task.PostponedCount > constants.PostponeWarningThreshold {
		ctx.Printf("This task has been postponed %d times. Consider splitting it into smaller steps.\n", task.PostponedCount)
	}
	return nil
}
