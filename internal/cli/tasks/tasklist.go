package tasks

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
)

type TaskListCmd struct {
	Today   bool `help:"Only show open tasks that are undated or due today or earlier."`
	Pending bool `help:"Hide completed tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	switch {
	case c.Today:
		tasks = models.TodaysTasks(tasks, ctx.Clock())
	case c.Pending:
		_, tasks = models.SplitByCompletion(tasks)
	}

	if len(tasks) == 0 {
		ctx.Println("No tasks found")
		return nil
	}

	ctx.Println("Tasks:")
	for _, task := range tasks {
		ctx.Printf("  %s\n", cli.FormatTask(task))
		if task.Description != "" {
			ctx.Printf("      %s\n", task.Description)
		}
	}
	return nil
}
