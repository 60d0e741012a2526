package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/recommender"
)

// NotifyCmd sends a desktop notification through the tray companion. With no
// message it sends a reminder built from today's tasks and check-in.
type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Text to send."`
	DryRun  bool   `help:"Print the notification instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	msg := strings.TrimSpace(c.Message)
	if msg == "" {
		var err error
		if msg, err = dailyReminder(ctx); err != nil {
			return err
		}
	}

	if c.DryRun {
		ctx.Println("[DryRun] " + msg)
		return nil
	}
	if ctx.Notifier == nil {
		return errors.New("no notifier configured")
	}
	if err := ctx.Notifier.Notify(context.Background(), msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

func dailyReminder(ctx *cli.Context) (string, error) {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return "", fmt.Errorf("failed to get tasks: %w", err)
	}
	today := models.TodaysTasks(tasks, ctx.Clock())
	if len(today) == 0 {
		return "Nothing due today. Enjoy the space!", nil
	}

	checkin, ok, err := ctx.TodaysCheckin()
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("%d task(s) for today. Check in to get a suggestion.", len(today)), nil
	}

	rec := ctx.Recommender
	if rec == nil {
		rec = recommender.New()
	}
	top := rec.Recommend(today, checkin.Emotion, checkin.Energy, 1)
	return fmt.Sprintf("%d task(s) for today. Try next: %s", len(today), top[0].Title), nil
}
