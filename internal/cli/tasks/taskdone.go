package tasks

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
)

// TaskDoneCmd toggles completion, so running it twice reopens the task.
type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task: %w", err)
	}

	task.ToggleComplete()
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if task.Completed {
		ctx.Printf("Completed: %s\n", task.Title)
	} else {
		ctx.Printf("Reopened: %s\n", task.Title)
	}
	return nil
}
