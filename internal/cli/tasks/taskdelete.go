package tasks

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task with ID %s: %w", c.ID, err)
	}

	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	ctx.Printf("Deleted task: %s (ID: %s)\n", task.Title, cli.ShortID(task.ID))
	return nil
}
