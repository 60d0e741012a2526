package settings

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/storage"
	"github.com/julianstephens/flowmind/internal/timer"
)

// SettingsCmd shows or changes the focus timer settings. Durations are
// minutes.
type SettingsCmd struct {
	List bool `help:"List current settings."`

	Focus                  *int `help:"Focus session length in minutes."`
	ShortBreak             *int `help:"Short break length in minutes."`
	LongBreak              *int `help:"Long break length in minutes."`
	SessionsUntilLongBreak *int `help:"Focus sessions before a long break."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	flags := []struct {
		name string
		v    *int
	}{
		{"focus", c.Focus},
		{"short-break", c.ShortBreak},
		{"long-break", c.LongBreak},
		{"sessions-until-long-break", c.SessionsUntilLongBreak},
	}
	for _, f := range flags {
		if f.v != nil && *f.v <= 0 {
			return fmt.Errorf("--%s must be a positive number, got %d", f.name, *f.v)
		}
	}

	// timer.New falls back to defaults on a failed load, and saving those
	// would clobber whatever is stored.
	store := storage.NewSettingsStore(ctx.Store)
	if _, err := store.Load(); err != nil {
		return fmt.Errorf("failed to load timer settings: %w", err)
	}
	m := timer.New(nil, store)
	defer m.Close()

	if c.List {
		printSettings(ctx, m.Settings())
		return nil
	}

	update := timer.SettingsUpdate{
		FocusDuration:          c.Focus,
		ShortBreakDuration:     c.ShortBreak,
		LongBreakDuration:      c.LongBreak,
		SessionsUntilLongBreak: c.SessionsUntilLongBreak,
	}
	if update == (timer.SettingsUpdate{}) {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := m.UpdateSettings(update); err != nil {
		return err
	}
	ctx.Println("Settings updated successfully.")
	printSettings(ctx, m.Settings())
	return nil
}

func printSettings(ctx *cli.Context, s models.TimerSettings) {
	ctx.Println("Timer Settings:")
	ctx.Printf("  Focus:                     %d min\n", s.FocusDuration)
	ctx.Printf("  Short Break:               %d min\n", s.ShortBreakDuration)
	ctx.Printf("  Long Break:                %d min\n", s.LongBreakDuration)
	ctx.Printf("  Sessions Until Long Break: %d\n", s.SessionsUntilLongBreak)
}
