package tasks

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/utils"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"D" help:"Optional description."`
	Due         string `short:"d" help:"Due date (YYYY-MM-DD, today or tomorrow)."`
	Energy      string `short:"e" help:"Energy the task requires (low|medium|high)." default:"medium" enum:"low,medium,high"`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium" enum:"low,medium,high"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	due, err := utils.ResolveDate(c.Due, ctx.Clock())
	if err != nil {
		return err
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		DueDate:     due,
		Energy:      models.EnergyLevel(c.Energy),
		Priority:    models.Priority(c.Priority),
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	ctx.Printf("Added task: %s (ID: %s)\n", task.Title, cli.ShortID(task.ID))
	return nil
}
