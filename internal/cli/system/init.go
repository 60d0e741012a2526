package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/storage"
	"github.com/julianstephens/flowmind/internal/storage/postgres"
	"github.com/julianstephens/flowmind/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized flowmind storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		if err := copyData(ctx, c.Source); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		ctx.Println("Copy completed successfully!")
	}
	return nil
}

// removeExisting deletes the SQLite file behind ctx.Store. PostgreSQL
// databases are never dropped.
func (c *InitCmd) removeExisting(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return errors.New("--force is only supported for SQLite storage")
	}

	dbPath := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absDB, errDB := filepath.Abs(dbPath)
		absSrc, errSrc := filepath.Abs(c.Source)
		if errDB == nil && errSrc == nil && absDB == absSrc {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func openSource(source string) (storage.Provider, error) {
	if postgres.IsConnString(source) {
		if valid, err := postgres.ValidateConnString(source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	}
	return sqlite.NewStore(source), nil
}

func copyData(ctx *cli.Context, source string) error {
	src, err := openSource(source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	ctx.Println("  Copying timer settings...")
	settings, err := src.GetTimerSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveTimerSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	ctx.Println("  Copying tasks...")
	tasks, err := src.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks from source: %w", err)
	}
	for _, task := range tasks {
		if err := ctx.Store.AddTask(task); err != nil {
			return fmt.Errorf("failed to add task %s: %w", task.ID, err)
		}
	}
	ctx.Printf("    Copied %d tasks\n", len(tasks))

	ctx.Println("  Copying check-ins...")
	checkins, err := src.GetCheckins("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get check-ins from source: %w", err)
	}
	for _, ch := range checkins {
		if err := ctx.Store.SaveCheckin(ch); err != nil {
			return fmt.Errorf("failed to save check-in for %s: %w", ch.Date, err)
		}
	}
	ctx.Printf("    Copied %d check-ins\n", len(checkins))
	return nil
}
