package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/flowmind/internal/backup"
	"github.com/julianstephens/flowmind/internal/logger"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/recommender"
	"github.com/julianstephens/flowmind/internal/storage"
	"github.com/julianstephens/flowmind/internal/storage/sqlite"
	"github.com/julianstephens/flowmind/internal/utils"
)

// Notifier delivers desktop notifications.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Context carries the dependencies every command runs with.
type Context struct {
	Store       storage.Provider
	Recommender *recommender.Recommender
	Notifier    Notifier
	Out         io.Writer
	Now         func() time.Time
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) Clock() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Today returns the current date as YYYY-MM-DD.
func (c *Context) Today() string {
	return utils.FormatDate(c.Clock())
}

// TodaysCheckin returns today's check-in, or ok=false when there is none.
func (c *Context) TodaysCheckin() (models.Checkin, bool, error) {
	checkin, err := c.Store.GetCheckin(c.Today())
	if errors.Is(err, storage.ErrNotFound) {
		return models.Checkin{}, false, nil
	}
	if err != nil {
		return models.Checkin{}, false, fmt.Errorf("failed to get today's check-in: %w", err)
	}
	return checkin, true, nil
}

// Notify sends text to the desktop notifier. Failures are logged only.
func (c *Context) Notify(text string) {
	if c.Notifier == nil {
		return
	}
	if err := c.Notifier.Notify(context.Background(), text); err != nil {
		logger.Debug("Notification not delivered", "error", err)
	}
}

// BackupManager returns a backup manager for the configured database. Only
// SQLite files can be snapshotted.
func (c *Context) BackupManager() (*backup.Manager, error) {
	store, ok := c.Store.(*sqlite.Store)
	if !ok {
		return nil, errors.New("backups are only supported for SQLite storage")
	}
	return backup.NewManager(store.GetConfigPath()).WithClock(c.Clock), nil
}

// PerformAutomaticBackup snapshots the database, logging any failure.
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.BackupManager()
	if err != nil {
		logger.Debug("Skipping automatic backup", "reason", err)
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindTask resolves a task by full ID or unique ID prefix.
func (c *Context) FindTask(id string) (models.Task, error) {
	task, err := c.Store.GetTask(id)
	if err == nil {
		return task, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Task{}, err
	}

	tasks, err := c.Store.GetAllTasks()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get tasks: %w", err)
	}
	var matches []models.Task
	for _, t := range tasks {
		if len(id) >= 4 && len(t.ID) >= len(id) && t.ID[:len(id)] == id {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

// ShortID is the prefix shown in listings.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
