package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/cli/backups"
	"github.com/julianstephens/flowmind/internal/cli/checkins"
	"github.com/julianstephens/flowmind/internal/cli/insights"
	"github.com/julianstephens/flowmind/internal/cli/settings"
	"github.com/julianstephens/flowmind/internal/cli/system"
	"github.com/julianstephens/flowmind/internal/cli/tasks"
	"github.com/julianstephens/flowmind/internal/constants"
	apperrors "github.com/julianstephens/flowmind/internal/errors"
	"github.com/julianstephens/flowmind/internal/keyring"
	"github.com/julianstephens/flowmind/internal/logger"
	"github.com/julianstephens/flowmind/internal/notifier"
	"github.com/julianstephens/flowmind/internal/recommender"
	"github.com/julianstephens/flowmind/internal/storage"
	"github.com/julianstephens/flowmind/internal/storage/postgres"
	"github.com/julianstephens/flowmind/internal/storage/sqlite"
)

// keyringConfig selects the connection string stored with 'flowmind keyring set'.
const keyringConfig = "keyring"

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite file path, PostgreSQL connection string, or 'keyring'. PostgreSQL passwords belong in the keyring, ${env}, or .pgpass." type:"string" default:"${config}"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize flowmind storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Focus   system.FocusCmd   `cmd:"" help:"Open the focus timer." default:"withargs"`
	Task    struct {
		Add      tasks.TaskAddCmd      `cmd:"" help:"Add a new task."`
		List     tasks.TaskListCmd     `cmd:"" help:"List tasks."`
		Done     tasks.TaskDoneCmd     `cmd:"" help:"Toggle a task's completion."`
		Postpone tasks.TaskPostponeCmd `cmd:"" help:"Push a task's due date back one day."`
		Edit     tasks.TaskEditCmd     `cmd:"" help:"Edit an existing task."`
		Delete   tasks.TaskDeleteCmd   `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Checkin struct {
		Today   checkins.CheckinCmd        `cmd:"" help:"Record how you feel today." default:"withargs"`
		History checkins.CheckinHistoryCmd `cmd:"" help:"Show past check-ins."`
	} `cmd:"" help:"Record and review daily check-ins."`
	Recommend insights.RecommendCmd `cmd:"" help:"Suggest tasks for today's mood and energy."`
	Summary   insights.SummaryCmd   `cmd:"" help:"Show today's progress."`
	Stats     insights.StatsCmd     `cmd:"" help:"Show all-time task and check-in stats."`
	Settings  settings.SettingsCmd  `cmd:"" help:"Show or change timer settings."`
	Backup    struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Notify  system.NotifyCmd  `cmd:"" hidden:"" help:"Send a notification (used by schedulers)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mood-aware focus timer and task companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
			"env":     constants.EnvDBConnection,
		},
	)

	command := ctx.Command()

	if err := logger.Init(logger.Config{Debug: CLI.Debug, Dir: logDir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	logger.Debug("Starting", "command", command, "version", constants.Version)

	store, err := openStore(CLI.Config, command)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:       store,
		Recommender: recommender.New(),
		Notifier:    notifier.New(),
	}

	if needsStore(command) {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// logDir keeps logs beside a SQLite database. Connection strings and the
// keyring have no local directory, so those log under the default one.
func logDir(config string) string {
	if config == keyringConfig || postgres.IsConnString(config) {
		config = constants.DefaultConfigPath
	}
	return filepath.Dir(kong.ExpandPath(config))
}

// needsStore reports whether command expects an initialized database. init
// creates it, doctor reports on it, and keyring never touches it.
func needsStore(command string) bool {
	switch rootCommand(command) {
	case "init", "doctor", "keyring":
		return false
	}
	return true
}

func rootCommand(command string) string {
	if fields := strings.Fields(command); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func openStore(config, command string) (storage.Provider, error) {
	fromKeyring := config == keyringConfig
	if fromKeyring {
		connStr, err := keyring.ResolveConnectionString()
		if err != nil {
			if rootCommand(command) == "keyring" {
				// the keyring commands run before anything is stored
				return sqlite.NewStore(kong.ExpandPath(constants.DefaultConfigPath)), nil
			}
			return nil, err
		}
		config = connStr
	}

	if !postgres.IsConnString(config) {
		if fromKeyring {
			return nil, errors.New("keyring entry is not a PostgreSQL connection string")
		}
		return sqlite.NewStore(kong.ExpandPath(config)), nil
	}

	valid, err := postgres.ValidateConnString(config)
	switch {
	case valid:
	case fromKeyring && errors.Is(err, postgres.ErrEmbeddedCredentials):
		// the keyring is encrypted, so a password may live there
	case errors.Is(err, postgres.ErrEmbeddedCredentials):
		return nil, fmt.Errorf("PostgreSQL connection strings with embedded passwords are not allowed on the command line; store it with 'flowmind keyring set' and use --config keyring, or set %s", constants.EnvDBConnection)
	default:
		return nil, err
	}
	return postgres.New(config), nil
}
