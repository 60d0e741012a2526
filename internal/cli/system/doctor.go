package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/constants"
	"github.com/julianstephens/flowmind/internal/keyring"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/notifier"
)

// schemaVersioner is implemented by the SQL-backed stores.
type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

// keyringAvailable and trayRunning are swapped in tests.
var (
	keyringAvailable = keyring.IsAvailable
	trayRunning      = notifier.Available
)

type DoctorCmd struct{}

type check struct {
	name string
	// warn marks checks whose failure does not fail the command
	warn    bool
	needsDB bool
	run     func(*cli.Context) error
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Clock/timezone", run: func(ctx *cli.Context) error { return checkClockTimezone(ctx.Clock()) }},
	{name: "Backups present", warn: true, run: checkBackupsPresent},
	{name: "OS keyring", warn: true, run: func(*cli.Context) error {
		if !keyringAvailable() {
			return fmt.Errorf("keyring unavailable, --config keyring will fall back to %s", constants.EnvDBConnection)
		}
		return nil
	}},
	{name: "Tray notifier", warn: true, run: func(*cli.Context) error { return trayRunning() }},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
		if c.name == "Database reachable" && err != nil {
			dbReachable = false
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.GetTimerSettings(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	sv, ok := ctx.Store.(schemaVersioner)
	if !ok {
		return nil
	}
	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'flowmind migrate')", current, latest)
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %s: %w", t.ID, err)
		}
	}

	checkins, err := ctx.Store.GetCheckins("0000-01-01", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get check-ins: %w", err)
	}
	for _, c := range checkins {
		if _, ok := models.ParseEmotion(string(c.Emotion)); !ok {
			return fmt.Errorf("check-in %s has unknown emotion %q", c.Date, c.Emotion)
		}
		if _, ok := models.ParseEnergyLevel(string(c.Energy)); !ok {
			return fmt.Errorf("check-in %s has unknown energy %q", c.Date, c.Energy)
		}
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found - consider creating one with 'flowmind backup create'")
	}
	return nil
}
