package tasks

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/utils"
)

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task ID or unique prefix."`
	Title       *string `short:"t" help:"New title."`
	Description *string `short:"D" help:"New description."`
	Due         *string `short:"d" help:"New due date (YYYY-MM-DD, today or tomorrow; empty clears it)."`
	Energy      *string `short:"e" help:"New energy level (low|medium|high)."`
	Priority    *string `short:"p" help:"New priority (low|medium|high)."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task: %w", err)
	}

	if c.Title != nil {
		task.Title = *c.Title
	}
	if c.Description != nil {
		task.Description = *c.Description
	}
	if c.Due != nil {
		due, err := utils.ResolveDate(*c.Due, ctx.Clock())
		if err != nil {
			return err
		}
		task.DueDate = due
	}
	if c.Energy != nil {
		e, ok := models.ParseEnergyLevel(*c.Energy)
		if !ok {
			return fmt.Errorf("invalid energy level: %s", *c.Energy)
		}
		task.Energy = e
	}
	if c.Priority != nil {
		p, ok := models.ParsePriority(*c.Priority)
		if !ok {
			return fmt.Errorf("invalid priority: %s", *c.Priority)
		}
		task.Priority = p
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}
	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	ctx.Printf("Updated task: %s\n", task.Title)
	return nil
}
